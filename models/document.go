package models

import "time"

// Document is the normalized shape every remote store implementation returns:
// an opaque identifier plus a flat field set. Revision carries the server-side
// timestamp of the last applied write and is used to order push events against
// locally queued mutations.
type Document struct {
	ID       string         `json:"id"`
	Fields   map[string]any `json:"fields"`
	Revision time.Time      `json:"revision,omitempty"`
}

// DocumentKey identifies a single document within a logical collection.
type DocumentKey struct {
	Collection string `json:"collection"`
	DocumentID string `json:"document_id"`
}
