package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/sahlen/vinkallaren/internal/common"
)

// UnaryRequestID tags every call with a request ID and logs the outcome.
func UnaryRequestID(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		ctx = common.WithRequestID(ctx, uuid.New().String())
		start := time.Now()

		resp, err := handler(ctx, req)

		fields := []any{
			"req_id", common.RequestIDFromContext(ctx),
			"method", info.FullMethod,
			"elapsed_ms", time.Since(start).Milliseconds(),
		}
		if err != nil {
			fields = append(fields, "code", status.Code(err).String(), "error", err)
			logger.Warn("rpc failed", fields...)
		} else {
			logger.Debug("rpc handled", fields...)
		}
		return resp, err
	}
}
