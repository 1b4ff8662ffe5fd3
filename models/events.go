package models

import "time"

// EventType enumerates the change notifications a realtime channel delivers.
type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// ChangeEvent is a single push notification for a document. Revision is the
// server timestamp of the change and is compared against the enqueue time of
// local unconfirmed writes to decide whether the event is stale.
type ChangeEvent struct {
	Type       EventType `json:"type"`
	Collection string    `json:"collection"`
	DocumentID string    `json:"document_id"`
	Document   Document  `json:"document"`
	Revision   time.Time `json:"revision"`
}

// ChannelSpec names a realtime subscription target: a whole collection, or a
// single document when DocumentID is set.
type ChannelSpec struct {
	Collection string `json:"collection"`
	DocumentID string `json:"document_id,omitempty"`
}

// Name returns the canonical channel name used to multiplex transport
// channels across subscribers.
func (c ChannelSpec) Name() string {
	if c.DocumentID == "" {
		return c.Collection
	}
	return c.Collection + "/" + c.DocumentID
}
