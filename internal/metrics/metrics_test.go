package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	require.NoError(t, m.Register(prometheus.NewRegistry()))

	m.Round(0.2, 1.38)
	m.Round(0.4, 0.4)
	m.Degenerate()
	m.Predicted()
	m.Trained(time.Second, nil)
	m.Trained(0, errors.New("failed"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.prometheus.Rounds))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prometheus.Degenerate))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prometheus.Predictions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prometheus.Runs.WithLabelValues(succeeded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prometheus.Runs.WithLabelValues(failed)))
}

func TestMetrics_RegisterTwice(t *testing.T) {
	m := NewMetrics()
	r := prometheus.NewRegistry()
	require.NoError(t, m.Register(r))
	assert.Error(t, m.Register(r))
}
