package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 注文の成否とHTTPレイテンシのカウンター類
type Metrics struct {
	registry *prometheus.Registry

	ordersPlaced   prometheus.Counter
	ordersRejected *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		ordersPlaced: factory.NewCounter(prometheus.CounterOpts{
			Name: "store_orders_placed_total",
			Help: "Orders successfully placed through checkout.",
		}),
		ordersRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "store_orders_rejected_total",
			Help: "Checkout requests rejected, by reason.",
		}, []string{"reason"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "store_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

func (m *Metrics) OrderPlaced() {
	m.ordersPlaced.Inc()
}

func (m *Metrics) OrderRejected(reason string) {
	m.ordersRejected.WithLabelValues(reason).Inc()
}

// Middleware はリクエストごとのレイテンシを記録する
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			m.httpDuration.
				WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler は /metrics 用のhttp.Handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
