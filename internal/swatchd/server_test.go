package swatchd

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/opencode-ai/swatch/internal/palette"
)

func TestServerPing(t *testing.T) {
	server := NewServer(zerolog.Nop(), WithVersion("test-version"))

	resp, err := server.Ping(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "test-version", resp.GetFields()["version"].GetStringValue())
	assert.NotEmpty(t, resp.GetFields()["timestamp"].GetStringValue())
}

func TestServerConvert(t *testing.T) {
	server := NewServer(zerolog.Nop())

	req, err := structpb.NewStruct(map[string]any{"l": 0.55, "c": 0.22, "h": 25.0})
	require.NoError(t, err)

	resp, err := server.Convert(context.Background(), req)
	require.NoError(t, err)

	fields := resp.GetFields()
	assert.Equal(t, "#d40924", fields["hex"].GetStringValue())
	assert.InDelta(t, 0.8310557275, fields["r"].GetNumberValue(), 1e-6)
	assert.InDelta(t, 0.0336788508, fields["g"].GetNumberValue(), 1e-6)
	assert.InDelta(t, 0.1414776247, fields["b"].GetNumberValue(), 1e-6)
}

func TestServerConvertValidation(t *testing.T) {
	server := NewServer(zerolog.Nop())

	tests := []struct {
		name   string
		fields map[string]any
	}{
		{name: "missing hue", fields: map[string]any{"l": 0.5, "c": 0.1}},
		{name: "string lightness", fields: map[string]any{"l": "bright", "c": 0.1, "h": 10.0}},
		{name: "empty", fields: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := structpb.NewStruct(tt.fields)
			require.NoError(t, err)

			_, err = server.Convert(context.Background(), req)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestServerLookup(t *testing.T) {
	server := NewServer(zerolog.Nop(), WithPalette(palette.New()))

	resp, err := server.Lookup(context.Background(), wrapperspb.String("Primary"))
	require.NoError(t, err)

	fields := resp.GetFields()
	assert.Equal(t, "primary", fields["token"].GetStringValue())
	assert.Equal(t, "#00cacb", fields["hex"].GetStringValue())
	assert.Equal(t, 0.75, fields["l"].GetNumberValue())
	assert.Equal(t, 0.0, fields["r"].GetNumberValue())
}

func TestServerLookupErrors(t *testing.T) {
	server := NewServer(zerolog.Nop())

	_, err := server.Lookup(context.Background(), wrapperspb.String("chartreuse"))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = server.Lookup(context.Background(), wrapperspb.String(""))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServerListTokens(t *testing.T) {
	server := NewServer(zerolog.Nop())

	resp, err := server.ListTokens(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)

	values := resp.GetFields()["tokens"].GetListValue().GetValues()
	require.Len(t, values, len(palette.Tokens()))
	assert.Equal(t, "background", values[0].GetStringValue())
	assert.Equal(t, "accent", values[len(values)-1].GetStringValue())
}

func TestShortMethod(t *testing.T) {
	assert.Equal(t, "Convert", shortMethod(MethodConvert))
	assert.Equal(t, "bare", shortMethod("bare"))
}
