package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/swatch/internal/color"
	"github.com/opencode-ai/swatch/internal/models"
	"github.com/opencode-ai/swatch/internal/palette"
)

// resetFlags restores every flag to its default so commands can be
// executed repeatedly in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

type testEnv struct {
	dbPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	env := &testEnv{dbPath: filepath.Join(dir, "swatch.db")}

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("SWATCH_DATABASE_PATH", env.dbPath)
	t.Setenv("SWATCH_OUTPUT_SWATCHES", "false")
	t.Setenv("SWATCH_LOGGING_LEVEL", "error")
	t.Setenv("SWATCH_NO_PROGRESS", "1")

	t.Cleanup(func() {
		resetFlags(rootCmd)
		appConfig = nil
	})
	return env
}

func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestConvertCommandJSON(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "convert", "0.55", "0.22", "25", "--json")
	require.NoError(t, err)

	var view conversionView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, color.LCH(0.55, 0.22, 25), view.Source)
	assert.Equal(t, "#d40924", view.Hex)
	assert.Equal(t, [3]uint8{212, 9, 36}, view.RGB8)
}

func TestConvertCommandFunctionalSyntax(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "convert", "oklch(75% 0.15 195deg)")
	require.NoError(t, err)
	assert.Contains(t, out, "#00cacb")
	assert.Contains(t, out, "0, 202, 203")
}

func TestConvertCommandRejectsGarbage(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "convert", "bright", "red")
	require.Error(t, err)
	assert.True(t, errors.Is(err, color.ErrInvalidOKLCH))
}

func TestPaletteListJSONL(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "palette", "list", "--jsonl")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(palette.Tokens()))

	var first tokenView
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "background", first.Token)
	assert.Equal(t, "#031222", first.Hex)
}

func TestPaletteListTable(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "palette", "ls")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "TOKEN"))
	assert.Contains(t, out, "muted-foreground")
	assert.Contains(t, out, "#ea8b00")
}

func TestPaletteShowYAML(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "palette", "show", "Primary_Contrast", "--yaml")
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "primary-contrast", parsed["token"])
	assert.Equal(t, "#031222", parsed["hex"])
}

func TestPaletteShowUnknownToken(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "palette", "show", "chartreuse")
	require.Error(t, err)
	assert.True(t, errors.Is(err, palette.ErrUnknownToken))
}

func TestOutputFlagsAreExclusive(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "palette", "list", "--json", "--yaml")
	require.Error(t, err)
}

func TestSnapshotLifecycle(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "snapshot", "save", "--note", "baseline", "--json")
	require.NoError(t, err)

	var saved models.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &saved))
	require.NotEmpty(t, saved.ID)
	assert.Equal(t, "baseline", saved.Note)
	assert.Len(t, saved.Entries, len(palette.Tokens()))

	out, err = env.run(t, "snapshot", "list", "--json")
	require.NoError(t, err)
	var listed []models.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, saved.ID, listed[0].ID)

	out, err = env.run(t, "snapshot", "diff", saved.ID[:8], "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)

	out, err = env.run(t, "snapshot", "show", saved.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Note: baseline")
	assert.Contains(t, out, "#d15fea")

	_, err = env.run(t, "snapshot", "delete", saved.ID)
	require.NoError(t, err)

	_, err = env.run(t, "snapshot", "show", saved.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	out, err = env.run(t, "snapshot", "log", "--json")
	require.NoError(t, err)
	var logged []models.Event
	require.NoError(t, json.Unmarshal([]byte(out), &logged))
	require.Len(t, logged, 2)
	assert.Equal(t, models.EventTypeSnapshotDeleted, logged[0].Type)
	assert.Equal(t, models.EventTypeSnapshotCreated, logged[1].Type)
}

func TestSnapshotListEmpty(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "snapshot", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No snapshots found")
}

func TestInitCommand(t *testing.T) {
	env := newTestEnv(t)
	withConfigDir(t, filepath.Join(t.TempDir(), "swatch"), false)

	out, err := env.run(t, "init", "--json")
	require.NoError(t, err)

	var results []initResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "done", results[0].Status)
	assert.Equal(t, "done", results[1].Status)
	assert.Equal(t, env.dbPath, results[1].Message)
}

func TestUIRequiresInteractiveTerminal(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "ui", "--non-interactive")
	var preflight *PreflightError
	require.True(t, errors.As(err, &preflight))
	assert.Contains(t, preflight.Error(), "swatch palette list")
}

func TestInvalidConfigValueFails(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("SWATCH_OUTPUT_FORMAT", "xml")

	_, err := env.run(t, "palette", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}
