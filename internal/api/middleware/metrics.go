package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "globalenglish_http_requests_total",
		Help: "Peticiones HTTP por método, ruta y código",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "globalenglish_http_request_duration_seconds",
		Help:    "Duración de las peticiones HTTP en segundos",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms a ~8s
	}, []string{"method", "route"})
)

// Metrics registra conteo y latencia por ruta registrada, no por URL
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
