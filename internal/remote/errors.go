package remote

import (
	"errors"
	"fmt"
)

// Classification separates failures the queue may retry from failures that
// must never be retried.
type Classification int

const (
	// Transient marks failures that may succeed on a later attempt: network
	// errors, timeouts, rate limiting, 5xx-class server errors.
	Transient Classification = iota

	// Permanent marks failures retrying cannot fix: validation rejections,
	// authorization denials, 4xx-class responses other than rate limiting.
	Permanent
)

// Sentinel targets for errors.Is. A *StoreError matches exactly one of them
// according to its classification.
var (
	ErrTransient = errors.New("transient remote store failure")
	ErrPermanent = errors.New("permanent remote store failure")
)

// StoreError is the classified failure type returned by store
// implementations. StatusCode is zero for failures without an HTTP response
// (e.g. connection refused).
type StoreError struct {
	Class      Classification
	StatusCode int
	Message    string
	cause      error
}

func (e *StoreError) Error() string {
	label := "transient"
	if e.Class == Permanent {
		label = "permanent"
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s remote store failure: http %d: %s", label, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s remote store failure: %s", label, e.Message)
}

func (e *StoreError) Unwrap() error { return e.cause }

// Is lets errors.Is match a *StoreError against the classification sentinels.
func (e *StoreError) Is(target error) bool {
	switch target {
	case ErrTransient:
		return e.Class == Transient
	case ErrPermanent:
		return e.Class == Permanent
	}
	return false
}

// IsTransient reports whether err should be retried. Errors that carry no
// classification are treated as transient: the retry budget bounds the damage
// of a wrong guess, whereas misclassifying a recoverable failure as permanent
// would drop the operation outright.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrPermanent) {
		return false
	}
	return true
}

// IsPermanent reports whether err is classified as never retryable.
func IsPermanent(err error) bool {
	return err != nil && errors.Is(err, ErrPermanent)
}
