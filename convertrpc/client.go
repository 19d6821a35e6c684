package convertrpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client calls a remote Converter service. Rejected numerals come back as
// *elbonian.Error values with the same Kind and RuleID the server saw.
type Client struct {
	cc     *grpc.ClientConn
	client ConverterClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return NewClient(cc), nil
}

// NewClient wraps an existing connection.
func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc, client: NewConverterClient(cc)}
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

func (c *Client) ToArabic(ctx context.Context, input string) (int, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	reply, err := c.client.ToArabic(ctx, wrapperspb.String(input))
	if err != nil {
		return 0, mapRPC(err)
	}
	return int(reply.GetValue()), nil
}

func (c *Client) ToElbonian(ctx context.Context, input string) (string, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	reply, err := c.client.ToElbonian(ctx, wrapperspb.String(input))
	if err != nil {
		return "", mapRPC(err)
	}
	return reply.GetValue(), nil
}

func (c *Client) CID(ctx context.Context, input string) (string, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	reply, err := c.client.CID(ctx, wrapperspb.String(input))
	if err != nil {
		return "", mapRPC(err)
	}
	return reply.GetValue(), nil
}

func (c *Client) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, c.Timeout)
}
