package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	LuxService_Estimate_FullMethodName      = "/lux.v1.LuxService/Estimate"
	LuxService_ListCatalog_FullMethodName   = "/lux.v1.LuxService/ListCatalog"
	LuxService_ListPresets_FullMethodName   = "/lux.v1.LuxService/ListPresets"
	LuxService_PreviewCustom_FullMethodName = "/lux.v1.LuxService/PreviewCustom"
)

// LuxServiceServer is the server API for LuxService
type LuxServiceServer interface {
	Estimate(context.Context, *EstimateRequest) (*EstimateResponse, error)
	ListCatalog(context.Context, *ListCatalogRequest) (*ListCatalogResponse, error)
	ListPresets(context.Context, *ListPresetsRequest) (*ListPresetsResponse, error)
	PreviewCustom(context.Context, *PreviewCustomRequest) (*PreviewCustomResponse, error)
}

// UnimplementedLuxServiceServer can be embedded to keep forward compatibility
type UnimplementedLuxServiceServer struct{}

func (UnimplementedLuxServiceServer) Estimate(context.Context, *EstimateRequest) (*EstimateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Estimate not implemented")
}

func (UnimplementedLuxServiceServer) ListCatalog(context.Context, *ListCatalogRequest) (*ListCatalogResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCatalog not implemented")
}

func (UnimplementedLuxServiceServer) ListPresets(context.Context, *ListPresetsRequest) (*ListPresetsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPresets not implemented")
}

func (UnimplementedLuxServiceServer) PreviewCustom(context.Context, *PreviewCustomRequest) (*PreviewCustomResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PreviewCustom not implemented")
}

// RegisterLuxServiceServer registers srv on s
func RegisterLuxServiceServer(s grpc.ServiceRegistrar, srv LuxServiceServer) {
	s.RegisterService(&LuxService_ServiceDesc, srv)
}

func _LuxService_Estimate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(EstimateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuxServiceServer).Estimate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LuxService_Estimate_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuxServiceServer).Estimate(ctx, req.(*EstimateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuxService_ListCatalog_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListCatalogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuxServiceServer).ListCatalog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LuxService_ListCatalog_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuxServiceServer).ListCatalog(ctx, req.(*ListCatalogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuxService_ListPresets_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListPresetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuxServiceServer).ListPresets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LuxService_ListPresets_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuxServiceServer).ListPresets(ctx, req.(*ListPresetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LuxService_PreviewCustom_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PreviewCustomRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LuxServiceServer).PreviewCustom(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LuxService_PreviewCustom_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LuxServiceServer).PreviewCustom(ctx, req.(*PreviewCustomRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LuxService_ServiceDesc describes LuxService for grpc.RegisterService
var LuxService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "lux.v1.LuxService",
	HandlerType: (*LuxServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Estimate", Handler: _LuxService_Estimate_Handler},
		{MethodName: "ListCatalog", Handler: _LuxService_ListCatalog_Handler},
		{MethodName: "ListPresets", Handler: _LuxService_ListPresets_Handler},
		{MethodName: "PreviewCustom", Handler: _LuxService_PreviewCustom_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lux/v1/lux.proto",
}

// LuxServiceClient is the client API for LuxService
type LuxServiceClient interface {
	Estimate(ctx context.Context, in *EstimateRequest, opts ...grpc.CallOption) (*EstimateResponse, error)
	ListCatalog(ctx context.Context, in *ListCatalogRequest, opts ...grpc.CallOption) (*ListCatalogResponse, error)
	ListPresets(ctx context.Context, in *ListPresetsRequest, opts ...grpc.CallOption) (*ListPresetsResponse, error)
	PreviewCustom(ctx context.Context, in *PreviewCustomRequest, opts ...grpc.CallOption) (*PreviewCustomResponse, error)
}

type luxServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLuxServiceClient wraps cc; calls are sent with the JSON codec
func NewLuxServiceClient(cc grpc.ClientConnInterface) LuxServiceClient {
	return &luxServiceClient{cc}
}

func (c *luxServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *luxServiceClient) Estimate(ctx context.Context, in *EstimateRequest, opts ...grpc.CallOption) (*EstimateResponse, error) {
	out := new(EstimateResponse)
	if err := c.invoke(ctx, LuxService_Estimate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luxServiceClient) ListCatalog(ctx context.Context, in *ListCatalogRequest, opts ...grpc.CallOption) (*ListCatalogResponse, error) {
	out := new(ListCatalogResponse)
	if err := c.invoke(ctx, LuxService_ListCatalog_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luxServiceClient) ListPresets(ctx context.Context, in *ListPresetsRequest, opts ...grpc.CallOption) (*ListPresetsResponse, error) {
	out := new(ListPresetsResponse)
	if err := c.invoke(ctx, LuxService_ListPresets_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *luxServiceClient) PreviewCustom(ctx context.Context, in *PreviewCustomRequest, opts ...grpc.CallOption) (*PreviewCustomResponse, error) {
	out := new(PreviewCustomResponse)
	if err := c.invoke(ctx, LuxService_PreviewCustom_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
