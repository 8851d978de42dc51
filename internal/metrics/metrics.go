package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTP 請求指標，service 標籤區分 relay 與 counter
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "path", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "path", "method"},
	)
)

// RelayUpstreamErrors 計算 Gemini 呼叫失敗次數
var RelayUpstreamErrors = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "relay_upstream_errors_total",
		Help: "Total number of failed generation calls",
	},
)

// CounterVisits 計算成功記錄的造訪次數
var CounterVisits = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "counter_visits_total",
		Help: "Total number of visits recorded by this process",
	},
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration)
	prometheus.MustRegister(RelayUpstreamErrors, CounterVisits)
}
