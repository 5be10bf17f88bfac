package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := NewFetchMetrics(prometheus.NewRegistry())

	m.Observe("manifest", time.Now(), nil)
	m.Observe("manifest", time.Now(), nil)
	m.Observe("manifest", time.Now(), errors.New("boom"))
	m.Observe("index", time.Now(), nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("manifest", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("manifest", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("index", "ok")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Duration))
}
