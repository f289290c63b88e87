package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/swatch/internal/palette"
)

func TestNewSnapshot(t *testing.T) {
	snapshot := NewSnapshot(palette.New(), "  release 1  ")

	assert.Equal(t, "release 1", snapshot.Note)
	require.Len(t, snapshot.Entries, len(palette.Tokens()))
	assert.Equal(t, "background", snapshot.Entries[0].Token)
	assert.Equal(t, "#00cacb", snapshot.Entries[palette.Primary].Hex)
	require.NoError(t, snapshot.Validate())
}

func TestSnapshotValidate(t *testing.T) {
	snapshot := &Snapshot{}
	err := snapshot.Validate()
	var vErr *ValidationErrors
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "entries", vErr.Errors[0].Field)

	snapshot = &Snapshot{Entries: []SnapshotEntry{
		{Token: "primary", Hex: "#00cacb"},
		{Token: "primary", Hex: "#00cacb"},
		{Token: "teal", Hex: "#008080"},
	}}
	err = snapshot.Validate()
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Errors, 2)
	assert.Contains(t, err.Error(), "duplicate token")
}

func TestDiff(t *testing.T) {
	a := &Snapshot{Entries: []SnapshotEntry{
		{Token: "primary", Hex: "#00cacb"},
		{Token: "border", Hex: "#263c54"},
		{Token: "alert", Hex: "#ef806f"},
	}}
	b := &Snapshot{Entries: []SnapshotEntry{
		{Token: "primary", Hex: "#00cacc"},
		{Token: "border", Hex: "#263c54"},
		{Token: "accent", Hex: "#d15fea"},
	}}

	diffs := Diff(a, b)
	assert.Equal(t, []EntryDiff{
		{Token: "primary", Before: "#00cacb", After: "#00cacc"},
		{Token: "accent", Before: "", After: "#d15fea"},
		{Token: "alert", Before: "#ef806f", After: ""},
	}, diffs)

	assert.Empty(t, Diff(a, a))
}

func TestEventValidate(t *testing.T) {
	event := &Event{}
	require.Error(t, event.Validate())

	event = &Event{Type: EventTypeSnapshotCreated, EntityType: EntityTypeSnapshot, EntityID: "snap-1"}
	require.NoError(t, event.Validate())
}
