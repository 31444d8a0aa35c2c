package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hrm_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hrm_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	attendanceMarks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hrm_attendance_marks_total",
		Help: "Attendance mark attempts by submitted status and result",
	}, []string{"status", "result"})

	dashboardSnapshotDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hrm_dashboard_snapshot_duration_seconds",
		Help:    "Time spent computing a dashboard snapshot",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveMark counts one attendance mark attempt. result is "success",
// "not_found", "invalid" or "error".
func ObserveMark(status, result string) {
	attendanceMarks.WithLabelValues(status, result).Inc()
}

// ObserveSnapshot records how long one dashboard snapshot took.
func ObserveSnapshot(duration time.Duration) {
	dashboardSnapshotDuration.Observe(duration.Seconds())
}
