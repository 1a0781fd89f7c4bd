package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsMiddleware records request count, latency and in-flight requests.
type MetricsMiddleware struct {
	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsMiddleware registers the HTTP collectors on registerer.
func NewMetricsMiddleware(registerer prometheus.Registerer) (*MetricsMiddleware, error) {
	m := &MetricsMiddleware{
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}

	for _, collector := range []prometheus.Collector{m.inFlight, m.requests, m.duration} {
		if err := registerer.Register(collector); err != nil {
			return nil, errors.Wrap(err, "failed to register http metrics")
		}
	}

	return m, nil
}

// Handle instruments the request.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		err := next(c)
		if err != nil {
			// Let echo render the error now so the recorded status is final
			c.Error(err)
		}

		// Route template rather than raw URL to bound label cardinality
		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Response().Status)
		m.duration.WithLabelValues(c.Request().Method, path, status).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(c.Request().Method, path, status).Inc()

		return err
	}
}
