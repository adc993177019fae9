// Package rpc declares the AccountService gRPC contract: message types, the
// service descriptor, a client stub, and the mapping between account errors
// and gRPC statuses. Messages travel with a JSON codec.
package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "securelogin.AccountService"

const (
	RegisterMethod         = "/" + ServiceName + "/Register"
	LoginMethod            = "/" + ServiceName + "/Login"
	UpdateMethod           = "/" + ServiceName + "/Update"
	EvaluatePasswordMethod = "/" + ServiceName + "/EvaluatePassword"
	GeneratePasswordMethod = "/" + ServiceName + "/GeneratePassword"
	ValidateUsernameMethod = "/" + ServiceName + "/ValidateUsername"
)

// AccountServiceServer is implemented by the server side.
type AccountServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Update(context.Context, *UpdateRequest) (*UpdateResponse, error)
	EvaluatePassword(context.Context, *EvaluatePasswordRequest) (*EvaluatePasswordResponse, error)
	GeneratePassword(context.Context, *GeneratePasswordRequest) (*GeneratePasswordResponse, error)
	ValidateUsername(context.Context, *ValidateUsernameRequest) (*ValidateUsernameResponse, error)
}

func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&AccountServiceDesc, srv)
}

// unaryHandler adapts a typed method to grpc.MethodHandler.
func unaryHandler[Req any, Resp any](fullMethod string, call func(AccountServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AccountServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AccountServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var AccountServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unaryHandler(RegisterMethod, AccountServiceServer.Register)},
		{MethodName: "Login", Handler: unaryHandler(LoginMethod, AccountServiceServer.Login)},
		{MethodName: "Update", Handler: unaryHandler(UpdateMethod, AccountServiceServer.Update)},
		{MethodName: "EvaluatePassword", Handler: unaryHandler(EvaluatePasswordMethod, AccountServiceServer.EvaluatePassword)},
		{MethodName: "GeneratePassword", Handler: unaryHandler(GeneratePasswordMethod, AccountServiceServer.GeneratePassword)},
		{MethodName: "ValidateUsername", Handler: unaryHandler(ValidateUsernameMethod, AccountServiceServer.ValidateUsername)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "securelogin/account.json",
}

// AccountServiceClient is the client stub. Every call is sent with the JSON
// content subtype.
type AccountServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAccountServiceClient(cc grpc.ClientConnInterface) *AccountServiceClient {
	return &AccountServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AccountServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, RegisterMethod, in, opts)
}

func (c *AccountServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, LoginMethod, in, opts)
}

func (c *AccountServiceClient) Update(ctx context.Context, in *UpdateRequest, opts ...grpc.CallOption) (*UpdateResponse, error) {
	return invoke[UpdateResponse](ctx, c.cc, UpdateMethod, in, opts)
}

func (c *AccountServiceClient) EvaluatePassword(ctx context.Context, in *EvaluatePasswordRequest, opts ...grpc.CallOption) (*EvaluatePasswordResponse, error) {
	return invoke[EvaluatePasswordResponse](ctx, c.cc, EvaluatePasswordMethod, in, opts)
}

func (c *AccountServiceClient) GeneratePassword(ctx context.Context, in *GeneratePasswordRequest, opts ...grpc.CallOption) (*GeneratePasswordResponse, error) {
	return invoke[GeneratePasswordResponse](ctx, c.cc, GeneratePasswordMethod, in, opts)
}

func (c *AccountServiceClient) ValidateUsername(ctx context.Context, in *ValidateUsernameRequest, opts ...grpc.CallOption) (*ValidateUsernameResponse, error) {
	return invoke[ValidateUsernameResponse](ctx, c.cc, ValidateUsernameMethod, in, opts)
}
