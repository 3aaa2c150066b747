package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tablepos/pkg/api"
)

var _ connect.Interceptor = (*LoggingInterceptor)(nil)

// LoggingInterceptor logs every RPC call handled by the server, unary and
// streaming. It logs the procedure name, the order addressed, duration,
// and any error codes/messages.
type LoggingInterceptor struct{}

func NewLoggingInterceptor() *LoggingInterceptor {
	return &LoggingInterceptor{}
}

func (*LoggingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		logRPC(req.Spec().Procedure, err,
			"order_id", orderIDOf(req), // empty for catalog and display calls
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return resp, err
	}
}

func (*LoggingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler logs a stream once it ends.
func (*LoggingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		err := next(ctx, conn)
		logRPC(conn.Spec().Procedure, err,
			"stream", true,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return err
	}
}

func logRPC(procedure string, err error, attrs ...any) {
	if err == nil {
		slog.Info("RPC ok", append([]any{"procedure", procedure}, attrs...)...)
		return
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		slog.Warn("RPC error", append([]any{
			"procedure", procedure,
			"code", connectErr.Code(),
			"error", connectErr.Message(),
		}, attrs...)...)
		return
	}
	slog.Error("RPC error", append([]any{"procedure", procedure, "error", err}, attrs...)...)
}

func orderIDOf(req connect.AnyRequest) string {
	if scoped, ok := req.Any().(api.OrderScoped); ok {
		return scoped.GetOrderID()
	}
	return ""
}
