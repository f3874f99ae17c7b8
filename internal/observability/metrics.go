package observability

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsOnce sync.Once

	prom *fiberprometheus.FiberPrometheus

	// AuthAttempts counts init data verification outcomes by result label
	// (ok, rejected).
	AuthAttempts *prometheus.CounterVec

	// ToggleOps counts like/follow toggles by kind (like, follow) and
	// resulting action (liked, unliked, followed, unfollowed).
	ToggleOps *prometheus.CounterVec

	// FeedRequests counts feed page loads by filter (latest, following,
	// trending).
	FeedRequests *prometheus.CounterVec

	// RedisErrors counts failed Redis commands by command name.
	RedisErrors *prometheus.CounterVec
)

// InitMetrics registers application metrics and the HTTP middleware exporter.
// Safe to call more than once; registration happens a single time per process,
// which keeps test servers from tripping duplicate collector panics.
func InitMetrics(serviceName string) {
	metricsOnce.Do(func() {
		prom = fiberprometheus.New(serviceName)

		AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "telx_auth_attempts_total",
			Help: "Init data verification attempts by outcome.",
		}, []string{"result"})

		ToggleOps = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "telx_toggle_operations_total",
			Help: "Like and follow toggle operations by kind and action.",
		}, []string{"kind", "action"})

		FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "telx_feed_requests_total",
			Help: "Feed page requests by filter.",
		}, []string{"filter"})

		RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "telx_redis_errors_total",
			Help: "Failed Redis commands by command name.",
		}, []string{"command"})
	})
}

// RegisterMetrics attaches the Prometheus middleware and the /metrics
// endpoint to the app. InitMetrics must have been called first.
func RegisterMetrics(app *fiber.App) {
	if prom == nil {
		return
	}
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)
}
