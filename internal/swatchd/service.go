package swatchd

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "swatch.v1.PaletteService"

// Full method names.
const (
	MethodConvert    = "/" + ServiceName + "/Convert"
	MethodLookup     = "/" + ServiceName + "/Lookup"
	MethodListTokens = "/" + ServiceName + "/ListTokens"
	MethodPing       = "/" + ServiceName + "/Ping"
)

// PaletteServiceServer is the server API for the palette service.
type PaletteServiceServer interface {
	Convert(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Lookup(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListTokens(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Ping(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// RegisterPaletteServiceServer registers srv with the gRPC registrar.
func RegisterPaletteServiceServer(s grpc.ServiceRegistrar, srv PaletteServiceServer) {
	s.RegisterService(&PaletteServiceDesc, srv)
}

// PaletteServiceDesc describes the palette service for grpc.Server.
var PaletteServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PaletteServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Convert", Handler: convertHandler},
		{MethodName: "Lookup", Handler: lookupHandler},
		{MethodName: "ListTokens", Handler: listTokensHandler},
		{MethodName: "Ping", Handler: pingHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "swatch/v1/palette.proto",
}

func convertHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaletteServiceServer).Convert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodConvert}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PaletteServiceServer).Convert(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func lookupHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaletteServiceServer).Lookup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodLookup}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PaletteServiceServer).Lookup(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func listTokensHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaletteServiceServer).ListTokens(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodListTokens}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PaletteServiceServer).ListTokens(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func pingHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaletteServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodPing}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PaletteServiceServer).Ping(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}
