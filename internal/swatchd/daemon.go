package swatchd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"github.com/opencode-ai/swatch/internal/config"
	"github.com/opencode-ai/swatch/internal/events"
	"github.com/opencode-ai/swatch/internal/models"
	"github.com/opencode-ai/swatch/internal/palette"
)

// Options configure the daemon runtime. Zero values fall back to the
// server section of the config.
type Options struct {
	Hostname string
	Port     int
	// MetricsPort below zero disables the metrics endpoint.
	MetricsPort int
	Version     string
	Palette     *palette.Palette
	// Events records start and stop events when set.
	Events events.Repository
}

// Daemon runs the palette service and its metrics endpoint.
type Daemon struct {
	cfg    *config.Config
	logger zerolog.Logger
	opts   Options

	server      *Server
	limiter     *RateLimiter
	grpcServer  *grpc.Server
	metricsAddr string
}

// New constructs a daemon with the provided configuration.
func New(cfg *config.Config, logger zerolog.Logger, opts Options) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if opts.Hostname == "" {
		opts.Hostname = cfg.Server.Host
	}
	if opts.Hostname == "" {
		opts.Hostname = "127.0.0.1"
	}
	if opts.Port == 0 {
		opts.Port = cfg.Server.Port
	}
	if opts.Port == 0 {
		opts.Port = config.DefaultPort
	}
	if opts.MetricsPort == 0 {
		opts.MetricsPort = cfg.Server.MetricsPort
	}

	server := NewServer(logger, WithVersion(opts.Version), WithPalette(opts.Palette))
	limiter := NewRateLimiter()

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(metricsInterceptor, limiter.UnaryServerInterceptor()),
	)
	RegisterPaletteServiceServer(grpcServer, server)

	d := &Daemon{
		cfg:        cfg,
		logger:     logger,
		opts:       opts,
		server:     server,
		limiter:    limiter,
		grpcServer: grpcServer,
	}
	if opts.MetricsPort > 0 {
		d.metricsAddr = net.JoinHostPort(opts.Hostname, strconv.Itoa(opts.MetricsPort))
	}
	return d, nil
}

// Run listens on the configured ports and blocks until ctx is canceled.
func (d *Daemon) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	bindAddr := d.bindAddr()
	listener, err := net.Listen("tcp", bindAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", bindAddr, err)
	}

	var metricsListener net.Listener
	if d.metricsAddr != "" {
		metricsListener, err = net.Listen("tcp", d.metricsAddr)
		if err != nil {
			listener.Close()
			return fmt.Errorf("failed to listen on %s: %w", d.metricsAddr, err)
		}
	}

	return d.Serve(ctx, listener, metricsListener)
}

// Serve runs the service on the given listeners until ctx is canceled.
// metricsListener may be nil.
func (d *Daemon) Serve(ctx context.Context, listener, metricsListener net.Listener) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	bind := listener.Addr().String()
	d.logger.Info().
		Str("bind", bind).
		Str("version", d.opts.Version).
		Msg("swatchd gRPC server starting")
	d.recordLifecycle(ctx, models.EventTypeServerStarted, bind)

	errCh := make(chan error, 2)
	go func() {
		errCh <- d.grpcServer.Serve(listener)
	}()

	var metrics *MetricsServer
	if metricsListener != nil {
		metrics = NewMetricsServer(metricsListener.Addr().String())
		d.logger.Info().Str("bind", metricsListener.Addr().String()).Msg("metrics endpoint starting")
		go func() {
			errCh <- metrics.Serve(metricsListener)
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		d.logger.Info().Msg("swatchd shutting down...")
	case err := <-errCh:
		if err != nil {
			runErr = fmt.Errorf("server error: %w", err)
		}
	}

	d.grpcServer.GracefulStop()
	if metrics != nil {
		if err := metrics.Shutdown(context.WithoutCancel(ctx)); err != nil {
			d.logger.Warn().Err(err).Msg("metrics shutdown failed")
		}
	}

	d.recordLifecycle(context.WithoutCancel(ctx), models.EventTypeServerStopped, bind)
	d.logger.Info().Msg("swatchd shutdown complete")
	return runErr
}

func (d *Daemon) recordLifecycle(ctx context.Context, eventType models.EventType, bind string) {
	if d.opts.Events == nil {
		return
	}
	if err := events.LogServerLifecycle(ctx, d.opts.Events, eventType, bind, d.opts.Version); err != nil {
		d.logger.Warn().Err(err).Str("event", string(eventType)).Msg("failed to record server event")
	}
}

func (d *Daemon) bindAddr() string {
	return net.JoinHostPort(d.opts.Hostname, strconv.Itoa(d.opts.Port))
}

// Server returns the underlying service implementation.
func (d *Daemon) Server() *Server {
	return d.server
}

// RateLimiter returns the limiter applied to incoming RPCs.
func (d *Daemon) RateLimiter() *RateLimiter {
	return d.limiter
}
