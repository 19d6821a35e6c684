package convertrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const serviceName = "xdao.elbonian.convert.v1.Converter"

// ConverterServer is the server API for the Converter gRPC service.
//
// Requests and replies are protobuf well-known wrapper types so this package
// does not require a protoc/codegen toolchain. Every method takes the raw
// numeral text as a StringValue.
type ConverterServer interface {
	ToArabic(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int64Value, error)
	ToElbonian(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	CID(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// UnimplementedConverterServer can be embedded to have forward compatible implementations.
type UnimplementedConverterServer struct{}

func (UnimplementedConverterServer) ToArabic(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int64Value, error) {
	return nil, status.Error(codes.Unimplemented, "method ToArabic not implemented")
}
func (UnimplementedConverterServer) ToElbonian(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ToElbonian not implemented")
}
func (UnimplementedConverterServer) CID(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method CID not implemented")
}

// RegisterConverterServer registers the Converter service on a gRPC server.
func RegisterConverterServer(s grpc.ServiceRegistrar, srv ConverterServer) {
	s.RegisterService(&Converter_ServiceDesc, srv)
}

// ConverterClient is the client API for the Converter gRPC service.
type ConverterClient interface {
	ToArabic(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	ToElbonian(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	CID(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type converterClient struct{ cc grpc.ClientConnInterface }

func NewConverterClient(cc grpc.ClientConnInterface) ConverterClient {
	return &converterClient{cc: cc}
}

func (c *converterClient) ToArabic(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/ToArabic", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *converterClient) ToElbonian(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/ToElbonian", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *converterClient) CID(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/CID", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func _Converter_ToArabic_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConverterServer).ToArabic(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/ToArabic"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConverterServer).ToArabic(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Converter_ToElbonian_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConverterServer).ToElbonian(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/ToElbonian"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConverterServer).ToElbonian(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Converter_CID_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConverterServer).CID(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/CID"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConverterServer).CID(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Converter_ServiceDesc is the grpc.ServiceDesc for the Converter service.
var Converter_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ConverterServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ToArabic", Handler: _Converter_ToArabic_Handler},
		{MethodName: "ToElbonian", Handler: _Converter_ToElbonian_Handler},
		{MethodName: "CID", Handler: _Converter_CID_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "converter.proto",
}
