package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// GeneratorRequests 反馈生成器调用结果统计
	// outcome 取值: ok / capacity / error
	GeneratorRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_requests_total",
			Help: "Feedback generator calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// FallbackServed 降级为演示内容的次数，按动作类型统计
	FallbackServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_fallback_served_total",
			Help: "Demo fallback payloads served instead of generator output",
		},
		[]string{"operation"},
	)

	// QuotaRejections 配额拒绝次数，按动作类型统计
	QuotaRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quota_rejections_total",
			Help: "Requests rejected by the daily usage ledger",
		},
		[]string{"action"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(GeneratorRequests)
	prometheus.MustRegister(FallbackServed)
	prometheus.MustRegister(QuotaRejections)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
