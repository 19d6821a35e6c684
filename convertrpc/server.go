package convertrpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/elbonian/compliance"
	"xdao.co/elbonian/elbonian"
)

// Server exposes numeral conversion over the Converter gRPC service.
// It is stateless apart from its configuration.
type Server struct {
	UnimplementedConverterServer
	Mode compliance.ComplianceMode
}

func (s *Server) parse(in *wrapperspb.StringValue) (elbonian.Numeral, error) {
	mode := compliance.Permissive
	if s != nil {
		mode = s.Mode
	}
	n, err := elbonian.ParseWithMode(in.GetValue(), mode)
	if err != nil {
		return elbonian.Numeral{}, toStatus(err)
	}
	return n, nil
}

func (s *Server) ToArabic(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.Int64Value, error) {
	_ = ctx
	n, err := s.parse(in)
	if err != nil {
		return nil, err
	}
	return wrapperspb.Int64(int64(n.Arabic())), nil
}

func (s *Server) ToElbonian(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	n, err := s.parse(in)
	if err != nil {
		return nil, err
	}
	return wrapperspb.String(n.Elbonian()), nil
}

func (s *Server) CID(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	n, err := s.parse(in)
	if err != nil {
		return nil, err
	}
	return wrapperspb.String(n.CID()), nil
}

// ServerOptions configures NewGRPCServer.
type ServerOptions struct {
	Mode compliance.ComplianceMode

	// MaxMsgBytes caps inbound request size when non-zero.
	MaxMsgBytes int

	// Logger receives one entry per RPC. Nil disables logging.
	Logger *zap.Logger
}

// NewGRPCServer returns a gRPC server with the Converter service registered.
func NewGRPCServer(opts ServerOptions) *grpc.Server {
	var serverOpts []grpc.ServerOption
	if opts.Logger != nil {
		serverOpts = append(serverOpts, grpc.ChainUnaryInterceptor(UnaryLogger(opts.Logger)))
	}
	if opts.MaxMsgBytes > 0 {
		serverOpts = append(serverOpts, grpc.MaxRecvMsgSize(opts.MaxMsgBytes))
	}
	s := grpc.NewServer(serverOpts...)
	RegisterConverterServer(s, &Server{Mode: opts.Mode})
	return s
}

// UnaryLogger logs each unary call with its method, status code, latency
// and, for rejected numerals, the violated rule.
func UnaryLogger(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		st := status.Convert(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", st.Code().String()),
			zap.Duration("latency", time.Since(start)),
		}
		if err == nil {
			log.Debug("rpc served", fields...)
			return resp, nil
		}
		if rerr, ok := mapRPC(err).(*elbonian.Error); ok {
			fields = append(fields, zap.String("rule_id", rerr.RuleID), zap.String("kind", string(rerr.Kind)))
			log.Info("numeral rejected", fields...)
			return resp, err
		}
		log.Warn("rpc failed", append(fields, zap.Error(err))...)
		return resp, err
	}
}
