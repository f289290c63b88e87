package swatchd

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/opencode-ai/swatch/internal/color"
	"github.com/opencode-ai/swatch/internal/palette"
)

// Client is a typed client for the palette service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Convert asks the service to convert c.
func (c *Client) Convert(ctx context.Context, src color.OKLCH, opts ...grpc.CallOption) (color.RGB, error) {
	req, err := structpb.NewStruct(map[string]any{"l": src.L, "c": src.C, "h": src.H})
	if err != nil {
		return color.RGB{}, err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodConvert, req, out, opts...); err != nil {
		return color.RGB{}, err
	}
	return rgbFromStruct(out), nil
}

// Lookup resolves a token name on the service.
func (c *Client) Lookup(ctx context.Context, name string, opts ...grpc.CallOption) (palette.Entry, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodLookup, wrapperspb.String(name), out, opts...); err != nil {
		return palette.Entry{}, err
	}

	fields := out.GetFields()
	token, err := palette.ParseToken(fields["token"].GetStringValue())
	if err != nil {
		return palette.Entry{}, fmt.Errorf("decode lookup response: %w", err)
	}

	return palette.Entry{
		Token: token,
		Source: color.LCH(
			fields["l"].GetNumberValue(),
			fields["c"].GetNumberValue(),
			fields["h"].GetNumberValue(),
		),
		Color: rgbFromStruct(out),
	}, nil
}

// ListTokens returns the token names the service knows.
func (c *Client) ListTokens(ctx context.Context, opts ...grpc.CallOption) ([]string, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodListTokens, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}

	values := out.GetFields()["tokens"].GetListValue().GetValues()
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, v.GetStringValue())
	}
	return names, nil
}

// Ping returns the service version.
func (c *Client) Ping(ctx context.Context, opts ...grpc.CallOption) (string, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodPing, &emptypb.Empty{}, out, opts...); err != nil {
		return "", err
	}
	return out.GetFields()["version"].GetStringValue(), nil
}

func rgbFromStruct(s *structpb.Struct) color.RGB {
	fields := s.GetFields()
	return color.RGB{
		R: fields["r"].GetNumberValue(),
		G: fields["g"].GetNumberValue(),
		B: fields["b"].GetNumberValue(),
	}
}
