package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/securelogin/internal/common"
)

// requestID returns the id sent by the client, or a fresh one.
func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.RequestIDHeaderName); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.NewString()
}

// requestIDInterceptor tags every call with a request id, echoes it in the
// response header and logs the outcome.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	id := requestID(ctx)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, id))

	started := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "rpc",
		"req_id", id,
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(started))

	return resp, err
}

func (s *GRPCServer) rateLimitInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if s.limiter != nil && !s.limiter.Allow() {
		return nil, status.Error(codes.ResourceExhausted, common.ErrRateLimited.Error())
	}
	return handler(ctx, req)
}
