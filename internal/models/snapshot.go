// Package models defines the records swatch persists.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/opencode-ai/swatch/internal/color"
	"github.com/opencode-ai/swatch/internal/palette"
)

// Snapshot is a stored copy of a resolved palette.
// Snapshots are export records; palette lookups never read them.
type Snapshot struct {
	// ID is the unique identifier for the snapshot.
	ID string `json:"id" yaml:"id"`

	// Note is an optional free-form label.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`

	// CreatedAt is when the snapshot was taken.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Entries holds one row per token, in token order.
	Entries []SnapshotEntry `json:"entries" yaml:"entries"`
}

// SnapshotEntry is one token as it resolved when the snapshot was taken.
type SnapshotEntry struct {
	Token  string      `json:"token" yaml:"token"`
	Source color.OKLCH `json:"source" yaml:"source"`
	Color  color.RGB   `json:"color" yaml:"color"`
	Hex    string      `json:"hex" yaml:"hex"`
}

// NewSnapshot captures every entry of p.
func NewSnapshot(p *palette.Palette, note string) *Snapshot {
	entries := p.Entries()
	snapshot := &Snapshot{
		Note:    strings.TrimSpace(note),
		Entries: make([]SnapshotEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		snapshot.Entries = append(snapshot.Entries, SnapshotEntry{
			Token:  entry.Token.String(),
			Source: entry.Source,
			Color:  entry.Color,
			Hex:    entry.Hex(),
		})
	}
	return snapshot
}

// Validate checks that the snapshot can be stored.
func (s *Snapshot) Validate() error {
	validation := &ValidationErrors{}
	if len(s.Entries) == 0 {
		validation.AddMessage("entries", "at least one entry is required")
	}
	seen := make(map[string]bool, len(s.Entries))
	for i, entry := range s.Entries {
		field := fmt.Sprintf("entries[%d]", i)
		if _, err := palette.ParseToken(entry.Token); err != nil {
			validation.AddMessage(field, err.Error())
		}
		if seen[entry.Token] {
			validation.AddMessage(field, fmt.Sprintf("duplicate token %q", entry.Token))
		}
		seen[entry.Token] = true
	}
	return validation.Err()
}

// EntryDiff describes a token whose resolved color differs between snapshots.
type EntryDiff struct {
	Token  string `json:"token" yaml:"token"`
	Before string `json:"before" yaml:"before"`
	After  string `json:"after" yaml:"after"`
}

// Diff lists tokens whose hex color changed from a to b. Tokens present in
// only one snapshot are reported with an empty side.
func Diff(a, b *Snapshot) []EntryDiff {
	before := make(map[string]string, len(a.Entries))
	for _, entry := range a.Entries {
		before[entry.Token] = entry.Hex
	}

	var diffs []EntryDiff
	seen := make(map[string]bool, len(b.Entries))
	for _, entry := range b.Entries {
		seen[entry.Token] = true
		if prev, ok := before[entry.Token]; !ok || prev != entry.Hex {
			diffs = append(diffs, EntryDiff{Token: entry.Token, Before: prev, After: entry.Hex})
		}
	}
	for _, entry := range a.Entries {
		if !seen[entry.Token] {
			diffs = append(diffs, EntryDiff{Token: entry.Token, Before: entry.Hex})
		}
	}
	return diffs
}
