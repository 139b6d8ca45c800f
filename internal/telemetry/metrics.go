package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics with bounded cardinality (no per-entity labels, re-themed from
// fight-club-go/internal/api/observability.go's game_tick_duration_seconds/
// game_player_count/event_log_total family to the simulation core's own
// tick/entity/save/resource-cap surface).
var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sim_tick_duration_seconds",
		Help:    "Time spent in Engine.Tick",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
	})

	enemyCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sim_enemy_count",
		Help: "Current number of live enemies",
	})

	projectileCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sim_projectile_count",
		Help: "Current number of live projectiles",
	})

	resourceCapDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sim_resource_cap_dropped_total",
		Help: "Spawns dropped for exceeding a per-category resource cap",
	}, []string{"category"}) // bounded: "enemy", "projectile", "aoe", "particle", "floating_text"

	saveOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sim_save_ops_total",
		Help: "Save/load/checkpoint/rollback operations",
	}, []string{"op", "result"}) // op: checkpoint/full/load/rollback; result: ok/error

	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sim_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	wsConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sim_websocket_connections_active",
		Help: "Currently active WebSocket connections",
	})
)

// RecordTick records one Engine.Tick's wall-clock duration.
func RecordTick(d time.Duration) {
	tickDuration.Observe(d.Seconds())
}

// SetEnemyCount updates the live-enemy gauge.
func SetEnemyCount(n int) {
	enemyCount.Set(float64(n))
}

// SetProjectileCount updates the live-projectile gauge.
func SetProjectileCount(n int) {
	projectileCount.Set(float64(n))
}

// RecordResourceCapDrop increments the drop counter for one category.
// category must be one of "enemy", "projectile", "aoe", "particle",
// "floating_text".
func RecordResourceCapDrop(category string) {
	resourceCapDropped.WithLabelValues(category).Inc()
}

// RecordSaveOp records a save-subsystem operation outcome. op must be
// one of "checkpoint", "full", "load", "rollback"; result is "ok" or
// "error".
func RecordSaveOp(op, result string) {
	saveOpsTotal.WithLabelValues(op, result).Inc()
}

// RecordRequest records one HTTP request's latency.
func RecordRequest(method, endpoint string, duration time.Duration) {
	requestLatency.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// SetWSConnections updates the active-websocket-connection gauge.
func SetWSConnections(n int) {
	wsConnectionsActive.Set(float64(n))
}

// Handler returns the /metrics HTTP handler the demo host mounts.
func Handler() http.Handler {
	return promhttp.Handler()
}
