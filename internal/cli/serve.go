package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/db"
	"github.com/opencode-ai/swatch/internal/logging"
	"github.com/opencode-ai/swatch/internal/swatchd"
)

var (
	serveHost        string
	servePort        int
	serveMetricsPort int
	serveNoEvents    bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "bind address (default from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "gRPC port (default from config)")
	serveCmd.Flags().IntVar(&serveMetricsPort, "metrics-port", 0, "metrics port, -1 to disable (default from config)")
	serveCmd.Flags().BoolVar(&serveNoEvents, "no-events", false, "do not record start/stop events in the database")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the palette over gRPC",
	Long: `Run the swatch.v1.PaletteService gRPC service and a Prometheus
metrics endpoint until interrupted.`,
	Example: `  swatch serve
  swatch serve --port 9000 --metrics-port -1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		opts := swatchd.Options{
			Hostname:    serveHost,
			Port:        servePort,
			MetricsPort: serveMetricsPort,
			Version:     Version,
		}

		if !serveNoEvents {
			database, err := openDatabase(ctx)
			if err != nil {
				logger.Warn().Err(err).Msg("event recording disabled")
			} else {
				defer database.Close()
				opts.Events = db.NewEventRepository(database)
			}
		}

		daemon, err := swatchd.New(GetConfig(), logging.Component("swatchd"), opts)
		if err != nil {
			return err
		}
		return daemon.Run(ctx)
	},
}
