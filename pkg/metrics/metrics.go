// Package metrics holds the prometheus collectors exported by the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "memkv"

// request results
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

type Metrics struct {
	Registry *prometheus.Registry

	Accepted prometheus.Counter
	Rejected prometheus.Counter
	Active   prometheus.Gauge
	Requests *prometheus.CounterVec
}

// New builds a fresh set of collectors on a private registry. keys, when
// non-nil, backs the stored-keys gauge.
func New(keys func() int) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_accepted_total",
			Help:      "Connections handed to a dispatcher.",
		}),
		Rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_rejected_total",
			Help:      "Connections closed by the admission limiter.",
		}),
		Active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections_active",
			Help:      "Dispatchers currently running.",
		}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Decoded requests by command and result.",
		}, []string{"command", "result"}),
	}

	m.Registry.MustRegister(m.Accepted, m.Rejected, m.Active, m.Requests)
	if keys != nil {
		m.Registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "keys",
			Help:      "Records held by the store.",
		}, func() float64 { return float64(keys()) }))
	}
	return m
}

func (m *Metrics) Request(command, result string) {
	m.Requests.WithLabelValues(command, result).Inc()
}
