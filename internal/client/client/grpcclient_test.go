package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/securelogin/internal/accounts"
	"github.com/dmitrijs2005/securelogin/internal/common"
	"github.com/dmitrijs2005/securelogin/internal/policy"
	"github.com/dmitrijs2005/securelogin/internal/rpc"
)

/*************
 * Fakes
 *************/

type fakeAPI struct {
	lastRegister *rpc.RegisterRequest
	lastUpdate   *rpc.UpdateRequest
	sawDeadline  bool

	err        error
	updateResp *rpc.UpdateResponse
	evalResp   *rpc.EvaluatePasswordResponse
}

func (f *fakeAPI) Register(ctx context.Context, in *rpc.RegisterRequest, _ ...grpc.CallOption) (*rpc.RegisterResponse, error) {
	f.lastRegister = in
	_, f.sawDeadline = ctx.Deadline()
	return &rpc.RegisterResponse{}, f.err
}
func (f *fakeAPI) Login(context.Context, *rpc.LoginRequest, ...grpc.CallOption) (*rpc.LoginResponse, error) {
	return &rpc.LoginResponse{}, f.err
}
func (f *fakeAPI) Update(_ context.Context, in *rpc.UpdateRequest, _ ...grpc.CallOption) (*rpc.UpdateResponse, error) {
	f.lastUpdate = in
	if f.err != nil {
		return nil, f.err
	}
	return f.updateResp, nil
}
func (f *fakeAPI) EvaluatePassword(context.Context, *rpc.EvaluatePasswordRequest, ...grpc.CallOption) (*rpc.EvaluatePasswordResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.evalResp, nil
}
func (f *fakeAPI) GeneratePassword(context.Context, *rpc.GeneratePasswordRequest, ...grpc.CallOption) (*rpc.GeneratePasswordResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &rpc.GeneratePasswordResponse{Password: "Aa0!Aa0!Aa0!"}, nil
}
func (f *fakeAPI) ValidateUsername(_ context.Context, in *rpc.ValidateUsernameRequest, _ ...grpc.CallOption) (*rpc.ValidateUsernameResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	ok, msg := policy.ValidateUsername(in.Username)
	return &rpc.ValidateUsernameResponse{Valid: ok, Message: msg}, nil
}

type fakeHealth struct {
	status healthpb.HealthCheckResponse_ServingStatus
	err    error
}

func (f *fakeHealth) Check(context.Context, *healthpb.HealthCheckRequest, ...grpc.CallOption) (*healthpb.HealthCheckResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &healthpb.HealthCheckResponse{Status: f.status}, nil
}
func newTestClient(api *fakeAPI, h *fakeHealth) *GRPCClient {
	return &GRPCClient{timeout: time.Second, client: api, health: h}
}

/*************
 * Tests
 *************/

func TestWithRequestID(t *testing.T) {
	ctx := withRequestID(context.Background())
	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	require.Len(t, md.Get(common.RequestIDHeaderName), 1)

	// an id already present is kept
	ctx = metadata.AppendToOutgoingContext(context.Background(), common.RequestIDHeaderName, "fixed")
	md, _ = metadata.FromOutgoingContext(withRequestID(ctx))
	assert.Equal(t, []string{"fixed"}, md.Get(common.RequestIDHeaderName))
}

func TestRegister_SendsRequestWithDeadline(t *testing.T) {
	api := &fakeAPI{}
	c := newTestClient(api, &fakeHealth{})

	require.NoError(t, c.Register(context.Background(), "alice", "Aa1!aaaa"))
	assert.Equal(t, &rpc.RegisterRequest{Username: "alice", Password: "Aa1!aaaa"}, api.lastRegister)
	assert.True(t, api.sawDeadline)
}

func TestErrorsMapToSentinels(t *testing.T) {
	taken := rpc.ToStatus(accounts.ErrUsernameTaken)
	c := newTestClient(&fakeAPI{err: taken}, &fakeHealth{})
	assert.ErrorIs(t, c.Register(context.Background(), "alice", "x"), accounts.ErrUsernameTaken)

	c = newTestClient(&fakeAPI{err: rpc.ToStatus(accounts.ErrInvalidCredentials)}, &fakeHealth{})
	assert.ErrorIs(t, c.Login(context.Background(), "alice", "x"), accounts.ErrInvalidCredentials)

	c = newTestClient(&fakeAPI{err: status.Error(codes.Unavailable, "connection refused")}, &fakeHealth{})
	_, err := c.Generate(context.Background())
	assert.ErrorIs(t, err, common.ErrUnavailable)
	_, err = c.Evaluate(context.Background(), "x")
	assert.ErrorIs(t, err, common.ErrUnavailable)
	_, _, err = c.ValidateUsername(context.Background(), "x")
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestUpdate_PartialResult(t *testing.T) {
	api := &fakeAPI{updateResp: &rpc.UpdateResponse{
		Username: "alice2", Renamed: true, Failures: []string{"PASSWORD_MISMATCH"},
	}}
	c := newTestClient(api, &fakeHealth{})

	res, err := c.Update(context.Background(), "alice", accounts.UpdateRequest{
		CurrentPassword: "old", NewUsername: "alice2", NewPassword: "a", RepeatPassword: "b",
	})
	assert.ErrorIs(t, err, accounts.ErrPasswordMismatch)
	assert.Equal(t, accounts.UpdateResult{Username: "alice2", Renamed: true}, res)
	assert.Equal(t, &rpc.UpdateRequest{
		Current: "alice", CurrentPassword: "old", NewUsername: "alice2", NewPassword: "a", RepeatPassword: "b",
	}, api.lastUpdate)
}

func TestUpdate_StatusError(t *testing.T) {
	c := newTestClient(&fakeAPI{err: rpc.ToStatus(accounts.ErrUserNotFound)}, &fakeHealth{})

	res, err := c.Update(context.Background(), "ghost", accounts.UpdateRequest{NewUsername: "x"})
	assert.ErrorIs(t, err, accounts.ErrUserNotFound)
	assert.Equal(t, "ghost", res.Username)
	assert.False(t, res.Changed())
}

func TestPassthroughs(t *testing.T) {
	want := policy.StrengthResult{Verdict: policy.VerdictModerate, Score: 3, Feedback: []string{policy.FeedbackSpecial}}
	c := newTestClient(&fakeAPI{evalResp: &rpc.EvaluatePasswordResponse{Result: want}}, &fakeHealth{})
	ctx := context.Background()

	got, err := c.Evaluate(ctx, "Aa1aaaaa")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	pw, err := c.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Aa0!Aa0!Aa0!", pw)

	ok, msg, err := c.ValidateUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, policy.UsernameValidMessage, msg)
}

func TestPing(t *testing.T) {
	c := newTestClient(&fakeAPI{}, &fakeHealth{status: healthpb.HealthCheckResponse_SERVING})
	require.NoError(t, c.Ping(context.Background()))

	c = newTestClient(&fakeAPI{}, &fakeHealth{status: healthpb.HealthCheckResponse_NOT_SERVING})
	assert.ErrorIs(t, c.Ping(context.Background()), common.ErrUnavailable)

	c = newTestClient(&fakeAPI{}, &fakeHealth{err: status.Error(codes.Unavailable, "down")})
	assert.ErrorIs(t, c.Ping(context.Background()), common.ErrUnavailable)
}

func TestNewGRPCClient_LazyConnect(t *testing.T) {
	c, err := NewGRPCClient("127.0.0.1:1", 0)
	require.NoError(t, err)
	assert.Equal(t, defaultCallTimeout, c.timeout)
	require.NoError(t, c.Close())
}
