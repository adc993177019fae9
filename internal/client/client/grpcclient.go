package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"

	"github.com/dmitrijs2005/securelogin/internal/accounts"
	"github.com/dmitrijs2005/securelogin/internal/common"
	"github.com/dmitrijs2005/securelogin/internal/policy"
	"github.com/dmitrijs2005/securelogin/internal/rpc"
)

const defaultCallTimeout = 10 * time.Second

// accountAPI is the subset of rpc.AccountServiceClient in use.
type accountAPI interface {
	Register(ctx context.Context, in *rpc.RegisterRequest, opts ...grpc.CallOption) (*rpc.RegisterResponse, error)
	Login(ctx context.Context, in *rpc.LoginRequest, opts ...grpc.CallOption) (*rpc.LoginResponse, error)
	Update(ctx context.Context, in *rpc.UpdateRequest, opts ...grpc.CallOption) (*rpc.UpdateResponse, error)
	EvaluatePassword(ctx context.Context, in *rpc.EvaluatePasswordRequest, opts ...grpc.CallOption) (*rpc.EvaluatePasswordResponse, error)
	GeneratePassword(ctx context.Context, in *rpc.GeneratePasswordRequest, opts ...grpc.CallOption) (*rpc.GeneratePasswordResponse, error)
	ValidateUsername(ctx context.Context, in *rpc.ValidateUsernameRequest, opts ...grpc.CallOption) (*rpc.ValidateUsernameResponse, error)
}

type healthAPI interface {
	Check(ctx context.Context, in *healthpb.HealthCheckRequest, opts ...grpc.CallOption) (*healthpb.HealthCheckResponse, error)
}

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      accountAPI
	health      healthAPI
}

var _ accounts.Service = (*GRPCClient)(nil)

func withRequestID(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) > 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
}

func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withRequestID(ctx), method, req, reply, cc, opts...)
}

// NewGRPCClient prepares a connection to endpointURL. The connection is
// established lazily on the first call. A non-positive timeout selects the
// default.
func NewGRPCClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if c.timeout <= 0 {
		c.timeout = defaultCallTimeout
	}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return fmt.Errorf("grpc client %s: %w", s.endpointURL, err)
	}
	s.conn = conn
	s.client = rpc.NewAccountServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Register(ctx context.Context, username, password string) error {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	_, err := s.client.Register(ctx, &rpc.RegisterRequest{Username: username, Password: password})
	return rpc.FromStatus(err)
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) error {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	_, err := s.client.Login(ctx, &rpc.LoginRequest{Username: username, Password: password})
	return rpc.FromStatus(err)
}

func (s *GRPCClient) Update(ctx context.Context, current string, req accounts.UpdateRequest) (accounts.UpdateResult, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.Update(ctx, &rpc.UpdateRequest{
		Current:         current,
		CurrentPassword: req.CurrentPassword,
		NewUsername:     req.NewUsername,
		NewPassword:     req.NewPassword,
		RepeatPassword:  req.RepeatPassword,
	})
	if err != nil {
		return accounts.UpdateResult{Username: current}, rpc.FromStatus(err)
	}

	return accounts.UpdateResult{
		Username:        resp.Username,
		Renamed:         resp.Renamed,
		PasswordChanged: resp.PasswordChanged,
	}, rpc.ErrorFromReasons(resp.Failures)
}

func (s *GRPCClient) Evaluate(ctx context.Context, password string) (policy.StrengthResult, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.EvaluatePassword(ctx, &rpc.EvaluatePasswordRequest{Password: password})
	if err != nil {
		return policy.StrengthResult{}, rpc.FromStatus(err)
	}
	return resp.Result, nil
}

func (s *GRPCClient) Generate(ctx context.Context) (string, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.GeneratePassword(ctx, &rpc.GeneratePasswordRequest{})
	if err != nil {
		return "", rpc.FromStatus(err)
	}
	return resp.Password, nil
}

func (s *GRPCClient) ValidateUsername(ctx context.Context, username string) (bool, string, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.ValidateUsername(ctx, &rpc.ValidateUsernameRequest{Username: username})
	if err != nil {
		return false, "", rpc.FromStatus(err)
	}
	return resp.Valid, resp.Message, nil
}

// Ping asks the server's health service whether the account service is
// serving.
func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: rpc.ServiceName})
	if err != nil {
		return rpc.FromStatus(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: %s", common.ErrUnavailable, resp.GetStatus())
	}
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}
