package models

import (
	"encoding/json"
	"strings"
	"time"
)

// EventType categorizes events in the system.
type EventType string

const (
	EventTypeSnapshotCreated EventType = "snapshot.created"
	EventTypeSnapshotDeleted EventType = "snapshot.deleted"
	EventTypeServerStarted   EventType = "server.started"
	EventTypeServerStopped   EventType = "server.stopped"
)

// EntityType identifies the type of entity an event relates to.
type EntityType string

const (
	EntityTypeSnapshot EntityType = "snapshot"
	EntityTypeServer   EntityType = "server"
)

// Event represents an append-only log entry.
type Event struct {
	ID         string            `json:"id" yaml:"id"`
	Timestamp  time.Time         `json:"timestamp" yaml:"timestamp"`
	Type       EventType         `json:"type" yaml:"type"`
	EntityType EntityType        `json:"entity_type" yaml:"entity_type"`
	EntityID   string            `json:"entity_id" yaml:"entity_id"`
	Payload    json.RawMessage   `json:"payload,omitempty" yaml:"-"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(string(e.Type)) == "" {
		validation.AddMessage("type", "event type is required")
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		validation.AddMessage("entity_type", "entity_type is required")
	}
	if strings.TrimSpace(e.EntityID) == "" {
		validation.AddMessage("entity_id", "entity_id is required")
	}
	return validation.Err()
}

// SnapshotCreatedPayload is the payload for snapshot.created events.
type SnapshotCreatedPayload struct {
	SnapshotID string `json:"snapshot_id"`
	Note       string `json:"note,omitempty"`
	EntryCount int    `json:"entry_count"`
}

// ServerPayload is the payload for server lifecycle events.
type ServerPayload struct {
	Bind    string `json:"bind"`
	Version string `json:"version"`
}
