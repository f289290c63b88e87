package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/swatch/internal/palette"
)

func setOutputFlags(t *testing.T, json, jsonl, yaml bool) {
	t.Helper()
	jsonOutput, jsonlOutput, yamlOutput = json, jsonl, yaml
	t.Cleanup(func() {
		jsonOutput, jsonlOutput, yamlOutput = false, false, false
	})
}

func TestOutputFormatDefaultsToConfig(t *testing.T) {
	setOutputFlags(t, false, false, false)
	appConfig = nil

	assert.False(t, IsStructuredOutput())
	assert.False(t, IsJSONOutput())
}

func TestWriteOutputJSON(t *testing.T) {
	setOutputFlags(t, true, false, false)
	require.True(t, IsJSONOutput())

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, map[string]string{"hex": "#00cacb"}))
	assert.Equal(t, "{\n  \"hex\": \"#00cacb\"\n}\n", buf.String())
}

func TestWriteOutputJSONLSplitsSlices(t *testing.T) {
	setOutputFlags(t, false, true, false)
	require.True(t, IsJSONLOutput())

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, []string{"a", "b", "c"}))
	assert.Equal(t, []string{`"a"`, `"b"`, `"c"`}, strings.Split(strings.TrimSpace(buf.String()), "\n"))

	buf.Reset()
	require.NoError(t, WriteOutput(&buf, map[string]int{"n": 1}))
	assert.Equal(t, "{\"n\":1}\n", buf.String())
}

func TestWriteOutputYAML(t *testing.T) {
	setOutputFlags(t, false, false, true)
	require.True(t, IsYAMLOutput())

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, newTokenView(palette.New().Entry(palette.Primary))))
	out := buf.String()
	assert.Contains(t, out, "token: primary\n")
	assert.Contains(t, out, "#00cacb")
}

func TestPreflightErrorMessage(t *testing.T) {
	err := &PreflightError{Message: "no tty", Hint: "use a terminal", NextStep: "swatch palette list"}
	assert.Equal(t, "no tty\n  hint: use a terminal\n  try:  swatch palette list", err.Error())
	assert.Equal(t, "bare", (&PreflightError{Message: "bare"}).Error())
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", shortID("123456789abc"))
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "-", orDash(""))
}
