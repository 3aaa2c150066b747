package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tablepos/internal/metrics"
)

var _ connect.Interceptor = (*MetricsInterceptor)(nil)

// MetricsInterceptor counts handled calls by procedure and result code and
// observes their latency. A stream is counted once, when it ends.
type MetricsInterceptor struct {
	m *metrics.Metrics
}

func NewMetricsInterceptor(m *metrics.Metrics) *MetricsInterceptor {
	return &MetricsInterceptor{m: m}
}

func (i *MetricsInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		i.observe(req.Spec().Procedure, start, err)
		return resp, err
	}
}

func (i *MetricsInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i *MetricsInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		err := next(ctx, conn)
		i.observe(conn.Spec().Procedure, start, err)
		return err
	}
}

func (i *MetricsInterceptor) observe(procedure string, start time.Time, err error) {
	code := "ok"
	if err != nil {
		code = connect.CodeOf(err).String()
	}
	i.m.RPCs.WithLabelValues(procedure, code).Inc()
	i.m.RPCDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
}
