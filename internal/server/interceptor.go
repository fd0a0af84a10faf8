package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/openlabor/jobmarket/internal/common"
)

// RequestIDInterceptor tags every call with a request id and logs the
// method outcome. Failures keep their status error untouched.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"duration", time.Since(start),
				"error", err,
			)
			return nil, err
		}
		logger.Debug("rpc ok",
			"method", info.FullMethod,
			"request_id", requestID,
			"duration", time.Since(start),
		)
		return resp, nil
	}
}
