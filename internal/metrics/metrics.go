// Package metrics defines the Prometheus collectors of the terminal service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	RPCs        *prometheus.CounterVec
	RPCDuration *prometheus.HistogramVec

	OrdersCompleted prometheus.Counter
	Payments        *prometheus.CounterVec
	ChangeGiven     prometheus.Counter

	DisplayDropped prometheus.Counter
}

// New registers every collector on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		RPCs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tablepos",
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tablepos",
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1},
		}, []string{"procedure"}),
		OrdersCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tablepos",
			Name:      "orders_completed_total",
			Help:      "Orders settled and completed.",
		}),
		Payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tablepos",
			Name:      "payments_amount_total",
			Help:      "Amount applied to order balances by payment kind.",
		}, []string{"kind"}),
		ChangeGiven: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tablepos",
			Name:      "change_given_total",
			Help:      "Cash change handed back to customers.",
		}),
		DisplayDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tablepos",
			Name:      "display_messages_dropped_total",
			Help:      "Stale customer display messages discarded for slow screens.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RPCs, m.RPCDuration, m.OrdersCompleted, m.Payments, m.ChangeGiven, m.DisplayDropped,
	)
	return m
}

// ObserveDisplaySubscribers exports the number of connected in-process
// display receivers, read from count at scrape time.
func (m *Metrics) ObserveDisplaySubscribers(count func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "tablepos",
		Name:      "display_subscribers",
		Help:      "Customer display receivers currently subscribed.",
	}, func() float64 { return float64(count()) }))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
