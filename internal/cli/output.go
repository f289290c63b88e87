package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"
)

// PreflightError is returned when a command cannot run in the current
// environment. Hint and NextStep are printed under the message.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	msg := e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	if e.NextStep != "" {
		msg += "\n  try:  " + e.NextStep
	}
	return msg
}

// outputFormat resolves the output format. Flags win over config.
func outputFormat() string {
	switch {
	case jsonOutput:
		return "json"
	case jsonlOutput:
		return "jsonl"
	case yamlOutput:
		return "yaml"
	}
	return GetConfig().Output.Format
}

// IsJSONOutput reports whether output should be indented JSON.
func IsJSONOutput() bool {
	return outputFormat() == "json"
}

// IsJSONLOutput reports whether output should be JSON lines.
func IsJSONLOutput() bool {
	return outputFormat() == "jsonl"
}

// IsYAMLOutput reports whether output should be YAML.
func IsYAMLOutput() bool {
	return outputFormat() == "yaml"
}

// IsStructuredOutput reports whether any machine-readable format is active.
func IsStructuredOutput() bool {
	return outputFormat() != "table"
}

// WriteOutput encodes v in the active structured format. In JSONL mode
// slices are written one element per line.
func WriteOutput(out io.Writer, v any) error {
	switch outputFormat() {
	case "jsonl":
		return writeJSONL(out, v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

func writeJSONL(out io.Writer, v any) error {
	enc := json.NewEncoder(out)

	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Slice && value.Kind() != reflect.Array {
		return enc.Encode(v)
	}
	for i := 0; i < value.Len(); i++ {
		if err := enc.Encode(value.Index(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}
