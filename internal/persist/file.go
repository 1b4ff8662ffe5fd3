package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is an [Adapter] backed by a single JSON file. All keys live in one
// map that is rewritten on every mutation; writes go through a temp file and
// rename so a crash mid-write never truncates the previous state.
type File struct {
	path string

	mu    sync.RWMutex
	items map[string]string
}

// NewFile opens (or initialises) the file adapter at path. A missing file is
// treated as an empty store.
func NewFile(path string) (*File, error) {
	f := &File{
		path:  path,
		items: make(map[string]string),
	}
	if err := f.load(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read persistence file: %w", err)
	}

	var items map[string]string
	if err = json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("decode persistence file: %w", err)
	}
	if items == nil {
		items = make(map[string]string)
	}

	f.items = items
	return nil
}

func (f *File) persistLocked() error {
	dir := filepath.Dir(f.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create persistence dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(f.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode persistence state: %w", err)
	}

	tmp := f.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write persistence file: %w", err)
	}
	if err = os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace persistence file: %w", err)
	}

	return nil
}

func (f *File) GetItem(_ context.Context, key string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	v, ok := f.items[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (f *File) SetItem(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.items[key]
	f.items[key] = value
	if err := f.persistLocked(); err != nil {
		if had {
			f.items[key] = prev
		} else {
			delete(f.items, key)
		}
		return err
	}
	return nil
}

func (f *File) RemoveItem(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.items[key]
	if !had {
		return nil
	}
	delete(f.items, key)
	if err := f.persistLocked(); err != nil {
		f.items[key] = prev
		return err
	}
	return nil
}
