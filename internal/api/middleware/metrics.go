package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/wdfin/popcore-admin-service/pkg/metrics"
)

// statusRecorder перехватывает код ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics собирает HTTP-метрики по каждому запросу.
// В качестве path используется шаблон маршрута, а не сырой URL,
// чтобы не плодить отдельную серию на каждый id.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					path = tpl
				}
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			m.RequestsInFlight.Inc()
			start := time.Now()

			next.ServeHTTP(rec, r)

			m.RequestsInFlight.Dec()
			m.RequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
			m.RequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
		})
	}
}
