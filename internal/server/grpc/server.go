package grpc

import (
	"context"
	"errors"
	"net"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/securelogin/internal/accounts"
	"github.com/dmitrijs2005/securelogin/internal/logging"
	"github.com/dmitrijs2005/securelogin/internal/rpc"
)

const defaultShutdownTimeout = 5 * time.Second

// GRPCServer exposes an accounts.Service as the AccountService.
type GRPCServer struct {
	address         string
	accounts        accounts.Service
	logger          logging.Logger
	limiter         *rate.Limiter
	health          *health.Server
	shutdownTimeout time.Duration
}

type Option func(*GRPCServer)

// WithRateLimit caps the number of calls per second across all clients.
// A non-positive limit disables limiting.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(s *GRPCServer) {
		if perSecond <= 0 {
			s.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithShutdownTimeout bounds graceful stop; after it in-flight calls are cut.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *GRPCServer) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

func NewGRPCServer(a string, l logging.Logger, svc accounts.Service, opts ...Option) *GRPCServer {
	s := &GRPCServer{
		address:         a,
		logger:          l.With("module", "grpc_server"),
		accounts:        svc,
		health:          health.NewServer(),
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.rateLimitInterceptor))

	rpc.RegisterAccountServiceServer(srv, &handler{accounts: s.accounts, logger: s.logger})
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(rpc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
// If accepting fails first, the server is stopped before the error is returned.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		s.health.Shutdown()

		done := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(s.shutdownTimeout):
			s.logger.Warn(context.Background(), "graceful stop timed out, closing connections")
			srv.Stop()
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	err := srv.Serve(lis)
	cancel()
	<-stopped

	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
