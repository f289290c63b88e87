package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/db"
	"github.com/opencode-ai/swatch/internal/events"
	"github.com/opencode-ai/swatch/internal/models"
	"github.com/opencode-ai/swatch/internal/palette"
)

var (
	snapshotNote      string
	snapshotListLimit int
	snapshotLogLimit  int
)

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
	snapshotCmd.AddCommand(snapshotDiffCmd)
	snapshotCmd.AddCommand(snapshotDeleteCmd)
	snapshotCmd.AddCommand(snapshotLogCmd)

	snapshotSaveCmd.Flags().StringVarP(&snapshotNote, "note", "n", "", "label stored with the snapshot")
	snapshotListCmd.Flags().IntVar(&snapshotListLimit, "limit", 20, "maximum snapshots to list (0 for all)")
	snapshotLogCmd.Flags().IntVar(&snapshotLogLimit, "limit", 20, "maximum events to show (0 for all)")
}

var snapshotCmd = &cobra.Command{
	Use:     "snapshot",
	Aliases: []string{"snap"},
	Short:   "Record and compare resolved palettes",
	Long: `Snapshots store the resolved palette so later builds can be compared
against it. Palette lookups never read snapshots.`,
}

var snapshotSaveCmd = &cobra.Command{
	Use:     "save",
	Short:   "Store the current resolved palette",
	Example: `  swatch snapshot save --note "before hue tweak"`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		snapshot := models.NewSnapshot(palette.Default(), snapshotNote)

		step := startProgress("Saving snapshot")
		if err := db.NewSnapshotRepository(database).Create(ctx, snapshot); err != nil {
			step.Fail(err)
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		step.Done()

		if err := events.LogSnapshotCreated(ctx, db.NewEventRepository(database), snapshot); err != nil {
			logger.Warn().Err(err).Str("snapshot", snapshot.ID).Msg("failed to record snapshot event")
		}

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, snapshot)
		}

		fmt.Fprintln(out, "Snapshot saved:")
		fmt.Fprintf(out, "  ID:      %s\n", snapshot.ID)
		if snapshot.Note != "" {
			fmt.Fprintf(out, "  Note:    %s\n", snapshot.Note)
		}
		fmt.Fprintf(out, "  Tokens:  %d\n", len(snapshot.Entries))
		return nil
	},
}

var snapshotListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored snapshots, newest first",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		snapshots, err := db.NewSnapshotRepository(database).List(ctx, snapshotListLimit)
		if err != nil {
			return fmt.Errorf("failed to list snapshots: %w", err)
		}

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, snapshots)
		}
		if len(snapshots) == 0 {
			fmt.Fprintln(out, "No snapshots found. Create one with: swatch snapshot save")
			return nil
		}

		rows := make([][]string, 0, len(snapshots))
		for _, s := range snapshots {
			rows = append(rows, []string{shortID(s.ID), s.CreatedAt.Local().Format(time.DateTime), s.Note})
		}
		return writeTable(out, []string{"ID", "CREATED", "NOTE"}, rows)
	},
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the entries of a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		snapshot, err := findSnapshot(cmd, db.NewSnapshotRepository(database), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, snapshot)
		}

		fmt.Fprintf(out, "Snapshot %s (%s)\n", snapshot.ID, snapshot.CreatedAt.Local().Format(time.DateTime))
		if snapshot.Note != "" {
			fmt.Fprintf(out, "Note: %s\n", snapshot.Note)
		}
		fmt.Fprintln(out)

		rows := make([][]string, 0, len(snapshot.Entries))
		for _, entry := range snapshot.Entries {
			rows = append(rows, []string{entry.Token, entry.Source.String(), entry.Hex})
		}
		return writeTable(out, []string{"TOKEN", "OKLCH", "HEX"}, rows)
	},
}

var snapshotDiffCmd = &cobra.Command{
	Use:   "diff <a> [b]",
	Short: "Compare two snapshots, or one snapshot with the current palette",
	Example: `  swatch snapshot diff 3f2a
  swatch snapshot diff 3f2a 9c01 --json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		repo := db.NewSnapshotRepository(database)
		before, err := findSnapshot(cmd, repo, args[0])
		if err != nil {
			return err
		}

		after := models.NewSnapshot(palette.Default(), "current")
		afterLabel := "current"
		if len(args) == 2 {
			after, err = findSnapshot(cmd, repo, args[1])
			if err != nil {
				return err
			}
			afterLabel = shortID(after.ID)
		}

		diffs := models.Diff(before, after)

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			if diffs == nil {
				diffs = []models.EntryDiff{}
			}
			return WriteOutput(out, diffs)
		}
		if len(diffs) == 0 {
			fmt.Fprintf(out, "No differences between %s and %s.\n", shortID(before.ID), afterLabel)
			return nil
		}

		rows := make([][]string, 0, len(diffs))
		for _, d := range diffs {
			rows = append(rows, []string{d.Token, orDash(d.Before), orDash(d.After)})
		}
		return writeTable(out, []string{"TOKEN", shortID(before.ID), afterLabel}, rows)
	},
}

var snapshotDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a snapshot",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		repo := db.NewSnapshotRepository(database)
		snapshot, err := findSnapshot(cmd, repo, args[0])
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, snapshot.ID); err != nil {
			return fmt.Errorf("failed to delete snapshot: %w", err)
		}
		if err := events.LogSnapshotDeleted(ctx, db.NewEventRepository(database), snapshot.ID); err != nil {
			logger.Warn().Err(err).Str("snapshot", snapshot.ID).Msg("failed to record snapshot event")
		}

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, map[string]string{"deleted": snapshot.ID})
		}
		fmt.Fprintf(out, "Snapshot %s deleted.\n", snapshot.ID)
		return nil
	},
}

var snapshotLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent snapshot and server events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		recent, err := db.NewEventRepository(database).Recent(ctx, snapshotLogLimit)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, recent)
		}
		if len(recent) == 0 {
			fmt.Fprintln(out, "No events recorded.")
			return nil
		}

		rows := make([][]string, 0, len(recent))
		for _, e := range recent {
			rows = append(rows, []string{
				e.Timestamp.Local().Format(time.DateTime),
				string(e.Type),
				shortID(e.EntityID),
				string(e.Payload),
			})
		}
		return writeTable(out, []string{"TIME", "TYPE", "ENTITY", "DETAIL"}, rows)
	},
}

func findSnapshot(cmd *cobra.Command, repo *db.SnapshotRepository, id string) (*models.Snapshot, error) {
	snapshot, err := repo.Get(cmd.Context(), id)
	switch {
	case errors.Is(err, db.ErrSnapshotNotFound):
		return nil, fmt.Errorf("snapshot %q not found", id)
	case errors.Is(err, db.ErrSnapshotAmbiguous):
		return nil, fmt.Errorf("snapshot prefix %q matches more than one snapshot", id)
	case err != nil:
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return snapshot, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
