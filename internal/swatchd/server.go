// Package swatchd serves the palette over gRPC.
package swatchd

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/opencode-ai/swatch/internal/color"
	"github.com/opencode-ai/swatch/internal/palette"
)

// Server implements PaletteServiceServer.
type Server struct {
	logger    zerolog.Logger
	palette   *palette.Palette
	startedAt time.Time
	version   string
}

// ServerOption configures the Server.
type ServerOption func(*Server)

// WithVersion sets the reported daemon version.
func WithVersion(version string) ServerOption {
	return func(s *Server) {
		s.version = version
	}
}

// WithPalette serves p instead of palette.Default().
func WithPalette(p *palette.Palette) ServerOption {
	return func(s *Server) {
		if p != nil {
			s.palette = p
		}
	}
}

// NewServer creates the palette service implementation.
func NewServer(logger zerolog.Logger, opts ...ServerOption) *Server {
	s := &Server{
		logger:    logger,
		palette:   palette.Default(),
		startedAt: time.Now(),
		version:   "dev",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert turns an OKLCH triple into display sRGB.
func (s *Server) Convert(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	src, err := oklchFromStruct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	rgb := color.Convert(src)
	conversionsTotal.Inc()

	s.logger.Debug().
		Str("source", src.String()).
		Str("hex", rgb.Hex()).
		Msg("converted color")

	return structpb.NewStruct(map[string]any{
		"r":   rgb.R,
		"g":   rgb.G,
		"b":   rgb.B,
		"hex": rgb.Hex(),
	})
}

// Lookup resolves a palette token by name.
func (s *Server) Lookup(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}

	token, err := palette.ParseToken(req.GetValue())
	if err != nil {
		if errors.Is(err, palette.ErrUnknownToken) {
			return nil, status.Errorf(codes.NotFound, "token %q not found", req.GetValue())
		}
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	return entryStruct(s.palette.Entry(token))
}

// ListTokens returns every token name in canonical order.
func (s *Server) ListTokens(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	tokens := palette.Tokens()
	names := make([]any, 0, len(tokens))
	for _, token := range tokens {
		names = append(names, token.String())
	}
	return structpb.NewStruct(map[string]any{"tokens": names})
}

// Ping is a simple health check.
func (s *Server) Ping(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"version":   s.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"uptime":    time.Since(s.startedAt).Seconds(),
	})
}

func oklchFromStruct(req *structpb.Struct) (color.OKLCH, error) {
	var values [3]float64
	for i, key := range []string{"l", "c", "h"} {
		field, ok := req.GetFields()[key]
		if !ok {
			return color.OKLCH{}, errors.New(key + " is required")
		}
		if _, isNumber := field.GetKind().(*structpb.Value_NumberValue); !isNumber {
			return color.OKLCH{}, errors.New(key + " must be a number")
		}
		values[i] = field.GetNumberValue()
	}
	return color.LCH(values[0], values[1], values[2]), nil
}

func entryStruct(entry palette.Entry) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"token": entry.Token.String(),
		"l":     entry.Source.L,
		"c":     entry.Source.C,
		"h":     entry.Source.H,
		"r":     entry.Color.R,
		"g":     entry.Color.G,
		"b":     entry.Color.B,
		"hex":   entry.Hex(),
	})
}
