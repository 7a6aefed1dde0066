package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Snapshot is a point-in-time copy of the connection collectors.
type Snapshot struct {
	Accepted uint64 `json:"accepted"`
	Rejected uint64 `json:"rejected"`
	Active   int64  `json:"active"`
}

func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Accepted: uint64(valueOf(m.Accepted)),
		Rejected: uint64(valueOf(m.Rejected)),
		Active:   int64(valueOf(m.Active)),
	}
}

func valueOf(c prometheus.Metric) float64 {
	var pb dto.Metric
	if err := c.Write(&pb); err != nil {
		return 0
	}
	if pb.Counter != nil {
		return pb.GetCounter().GetValue()
	}
	return pb.GetGauge().GetValue()
}
