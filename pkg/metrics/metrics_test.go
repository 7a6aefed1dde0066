package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectors(t *testing.T) {
	keys := 3
	m := New(func() int { return keys })

	m.Accepted.Inc()
	m.Accepted.Inc()
	m.Active.Inc()
	m.Request("GET", ResultNotFound)
	m.Request("GET", ResultNotFound)
	m.Request("SET", ResultOK)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Accepted))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Active))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Requests.WithLabelValues("GET", ResultNotFound)))

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "memkv_keys" {
			found = true
			assert.Equal(t, float64(3), f.GetMetric()[0].GetGauge().GetValue())
		}
	}
	assert.True(t, found)
}

func TestIndependentRegistries(t *testing.T) {
	a, b := New(nil), New(nil)
	a.Rejected.Inc()
	assert.Equal(t, float64(0), testutil.ToFloat64(b.Rejected))
}

func TestSnapshot(t *testing.T) {
	m := New(nil)
	m.Accepted.Add(3)
	m.Rejected.Inc()
	m.Active.Inc()
	m.Active.Inc()
	m.Active.Dec()

	assert.Equal(t, Snapshot{Accepted: 3, Rejected: 1, Active: 1}, m.Snapshot())
}
