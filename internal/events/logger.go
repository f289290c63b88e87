// Package events provides helper functions for logging swatch events.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opencode-ai/swatch/internal/models"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogSnapshotCreated records that a palette snapshot was stored.
func LogSnapshotCreated(ctx context.Context, repo Repository, snapshot *models.Snapshot) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if snapshot == nil || snapshot.ID == "" {
		return fmt.Errorf("snapshot id is required")
	}

	payload, err := json.Marshal(models.SnapshotCreatedPayload{
		SnapshotID: snapshot.ID,
		Note:       snapshot.Note,
		EntryCount: len(snapshot.Entries),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeSnapshotCreated,
		EntityType: models.EntityTypeSnapshot,
		EntityID:   snapshot.ID,
		Payload:    payload,
	})
}

// LogSnapshotDeleted records that a snapshot was removed.
func LogSnapshotDeleted(ctx context.Context, repo Repository, snapshotID string) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if snapshotID == "" {
		return fmt.Errorf("snapshot id is required")
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeSnapshotDeleted,
		EntityType: models.EntityTypeSnapshot,
		EntityID:   snapshotID,
	})
}

// LogServerLifecycle records a palette service start or stop.
func LogServerLifecycle(ctx context.Context, repo Repository, eventType models.EventType, bind, version string) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if eventType != models.EventTypeServerStarted && eventType != models.EventTypeServerStopped {
		return fmt.Errorf("unsupported server event type %q", eventType)
	}

	payload, err := json.Marshal(models.ServerPayload{Bind: bind, Version: version})
	if err != nil {
		return fmt.Errorf("failed to marshal server payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       eventType,
		EntityType: models.EntityTypeServer,
		EntityID:   bind,
		Payload:    payload,
	})
}
