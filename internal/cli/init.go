package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/config"
)

var (
	initForce bool

	// configDirFunc is swapped out in tests.
	configDirFunc = config.DefaultConfigDir
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file and create the snapshot database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results := []initResult{
			createConfigFile(),
			initDatabase(cmd),
		}

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, results)
		}

		rows := make([][]string, 0, len(results))
		for _, r := range results {
			rows = append(rows, []string{r.Name, r.Status, r.Message})
		}
		if err := writeTable(out, []string{"STEP", "STATUS", "DETAIL"}, rows); err != nil {
			return err
		}

		for _, r := range results {
			if r.Status == "failed" {
				return fmt.Errorf("init failed: %s", r.Name)
			}
		}
		return nil
	},
}

type initResult struct {
	Name    string `json:"name" yaml:"name"`
	Status  string `json:"status" yaml:"status"` // done, skipped, failed
	Message string `json:"message" yaml:"message"`
}

func createConfigFile() initResult {
	result := initResult{Name: "config file"}

	dir := configDirFunc()
	path := filepath.Join(dir, "config.yaml")

	if _, err := os.Stat(path); err == nil && !initForce {
		result.Status = "skipped"
		result.Message = fmt.Sprintf("%s already exists (use --force to overwrite)", path)
		return result
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		result.Status = "failed"
		result.Message = err.Error()
		return result
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
		result.Status = "failed"
		result.Message = err.Error()
		return result
	}

	result.Status = "done"
	result.Message = path
	return result
}

func initDatabase(cmd *cobra.Command) initResult {
	result := initResult{Name: "snapshot database"}

	database, err := openDatabase(cmd.Context())
	if err != nil {
		result.Status = "failed"
		result.Message = err.Error()
		return result
	}
	defer database.Close()

	result.Status = "done"
	result.Message = database.Path()
	return result
}

const configTemplate = `# Swatch Configuration File
# Values here are overridden by SWATCH_* environment variables
# (for example SWATCH_OUTPUT_FORMAT=json).

logging:
  level: info        # debug, info, warn, error
  format: console    # console or json

output:
  format: table      # table, json, jsonl, yaml
  swatches: true     # draw color blocks next to table rows

database:
  path: ~/.local/share/swatch/swatch.db

server:
  host: 127.0.0.1
  port: 7420
  metrics_port: 7421 # 0 disables the metrics endpoint

tui:
  highlight: primary # token used for the selection cursor
`
