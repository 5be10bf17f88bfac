package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FetchMetrics 远程内容请求指标
type FetchMetrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	Dropped  *prometheus.CounterVec
}

// Fetch 全局的远程内容请求指标
var Fetch = NewFetchMetrics(prometheus.DefaultRegisterer)

// NewFetchMetrics 在指定注册器上创建指标
func NewFetchMetrics(reg prometheus.Registerer) *FetchMetrics {
	factory := promauto.With(reg)

	return &FetchMetrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "novel_reader_fetch_requests_total",
			Help: "Remote content requests by kind and outcome.",
		}, []string{"kind", "outcome"}),

		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "novel_reader_fetch_duration_seconds",
			Help:    "Remote content request latency by kind.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),

		Dropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "novel_reader_manifests_dropped_total",
			Help: "Manifests dropped from a fan-out batch after a failed fetch.",
		}, []string{"reason"}),
	}
}

// Observe 记录一次请求的结果与耗时
func (m *FetchMetrics) Observe(kind string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Requests.WithLabelValues(kind, outcome).Inc()
	m.Duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
