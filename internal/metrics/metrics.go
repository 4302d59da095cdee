package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wordbook_http_requests_total",
		Help: "Total number of API requests by route and status code.",
	}, []string{"method", "route", "code"})

	ActiveRequests = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wordbook_http_active_requests",
		Help: "Current number of in-flight requests.",
	})

	RequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wordbook_http_request_duration_seconds",
		Help:    "Handler duration for API requests.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"route"})

	EvaluationRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wordbook_evaluation_runs_total",
		Help: "Daily evaluation job runs by result.",
	}, []string{"result"})

	EvaluatedPlansTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wordbook_evaluated_plans_total",
		Help: "Daily plans evaluated by the daily job.",
	})
)

func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		RequestsTotal,
		ActiveRequests,
		RequestDurationSeconds,
		EvaluationRunsTotal,
		EvaluatedPlansTotal,
	)
}

// Handler exposes metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Middleware records request count and latency labelled with the chi route
// pattern, so path parameters don't blow up label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ActiveRequests.Inc()
		defer ActiveRequests.Dec()
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		RequestDurationSeconds.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
