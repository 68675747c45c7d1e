package grpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	serviceName = "foundrmate.v1.FoundrMate"

	RegisterMethod   = "/" + serviceName + "/Register"
	LoginMethod      = "/" + serviceName + "/Login"
	VerifyMethod     = "/" + serviceName + "/Verify"
	SubmitIdeaMethod = "/" + serviceName + "/SubmitIdea"
)

// FoundrMateServer is implemented by GRPCServer.
type FoundrMateServer interface {
	Register(context.Context, *RegisterRequest) (*AuthReply, error)
	Login(context.Context, *LoginRequest) (*AuthReply, error)
	Verify(context.Context, *VerifyRequest) (*VerifyReply, error)
	SubmitIdea(context.Context, *SubmitIdeaRequest) (*SubmitIdeaReply, error)
}

func unaryHandler[Req any, Resp any](method string, call func(FoundrMateServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(FoundrMateServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(srv.(FoundrMateServer), ctx, req.(*Req))
		})
	}
}

// ServiceDesc describes foundrmate.v1.FoundrMate for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*FoundrMateServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unaryHandler(RegisterMethod, FoundrMateServer.Register)},
		{MethodName: "Login", Handler: unaryHandler(LoginMethod, FoundrMateServer.Login)},
		{MethodName: "Verify", Handler: unaryHandler(VerifyMethod, FoundrMateServer.Verify)},
		{MethodName: "SubmitIdea", Handler: unaryHandler(SubmitIdeaMethod, FoundrMateServer.SubmitIdea)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "foundrmate/v1/foundrmate.json",
}

// Client is a thin caller for the service over any connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthReply, error) {
	return invoke[AuthReply](ctx, c.cc, RegisterMethod, in, opts...)
}

func (c *Client) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthReply, error) {
	return invoke[AuthReply](ctx, c.cc, LoginMethod, in, opts...)
}

func (c *Client) Verify(ctx context.Context, in *VerifyRequest, opts ...grpc.CallOption) (*VerifyReply, error) {
	return invoke[VerifyReply](ctx, c.cc, VerifyMethod, in, opts...)
}

func (c *Client) SubmitIdea(ctx context.Context, in *SubmitIdeaRequest, opts ...grpc.CallOption) (*SubmitIdeaReply, error) {
	return invoke[SubmitIdeaReply](ctx, c.cc, SubmitIdeaMethod, in, opts...)
}
