package swatchd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var (
	// rpcRequestsTotal counts RPCs by method and status code
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swatch_rpc_requests_total",
		Help: "Total palette service RPCs by method and status code",
	}, []string{"method", "code"})

	// conversionsTotal counts successful OKLCH conversions
	conversionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swatch_conversions_total",
		Help: "Total OKLCH to sRGB conversions served",
	})

	rpcDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "swatch_rpc_duration_seconds",
		Help:    "Palette service RPC latency in seconds",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	}, []string{"method"})
)

// metricsInterceptor records request counts and latency per method.
func metricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	method := shortMethod(info.FullMethod)
	rpcRequestsTotal.WithLabelValues(method, status.Code(err).String()).Inc()
	rpcDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	return resp, err
}

func shortMethod(fullMethod string) string {
	for i := len(fullMethod) - 1; i >= 0; i-- {
		if fullMethod[i] == '/' {
			return fullMethod[i+1:]
		}
	}
	return fullMethod
}

// MetricsServer serves the prometheus registry over HTTP.
type MetricsServer struct {
	server *http.Server
}

// NewMetricsServer creates a metrics server for addr.
func NewMetricsServer(addr string) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Serve blocks serving metrics on listener until Shutdown is called.
func (m *MetricsServer) Serve(listener net.Listener) error {
	if err := m.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the metrics server.
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.server.Shutdown(shutdownCtx)
}
