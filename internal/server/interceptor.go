package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/elitizon/invoicepipe/internal/common"
)

// RequestIDInterceptor tags every unary call with a request ID, taken
// from the x-request-id metadata when the caller sent one. The ID rides
// the context so queue jobs and worker logs can be correlated back to
// the originating call.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		reqID := incomingRequestID(ctx)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		ctx = common.WithRequestID(ctx, reqID)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("grpc.call.fail",
				"method", info.FullMethod,
				"req_id", reqID,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
		} else {
			logger.Debug("grpc.call.ok",
				"method", info.FullMethod,
				"req_id", reqID,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
		}
		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if vals := md.Get("x-request-id"); len(vals) > 0 {
		return vals[0]
	}
	return ""
}
