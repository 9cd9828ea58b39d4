// Package metrics provides Prometheus metrics for the report server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reports_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	linkTableLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_link_table_loads_total",
			Help: "Link table loads by outcome",
		},
		[]string{"table", "result"},
	)

	linkRecordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_link_records_skipped_total",
			Help: "Link table records dropped because they failed to decode",
		},
		[]string{"table"},
	)

	englishBytesServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reports_english_pdf_bytes_served_total",
			Help: "Bytes of English PDFs streamed from the local directory",
		},
	)

	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_searches_total",
			Help: "Search API calls by outcome",
		},
		[]string{"result"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request count and latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordLinkTableLoad records the outcome of reading a link table file.
// result is one of "ok", "missing", "error".
func RecordLinkTableLoad(table, result string) {
	linkTableLoads.WithLabelValues(table, result).Inc()
}

func RecordLinkRecordSkipped(table string) {
	linkRecordsSkipped.WithLabelValues(table).Inc()
}

func RecordEnglishBytes(n int64) {
	if n > 0 {
		englishBytesServed.Add(float64(n))
	}
}

func RecordSearch(success bool) {
	result := "success"
	if !success {
		result = "error"
	}
	searchesTotal.WithLabelValues(result).Inc()
}
