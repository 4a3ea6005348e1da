package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/marketing-metrics-api/pkg/metrics"
)

const unmatchedPath = "unmatched"

// Metrics registra contagem e duração das requisições.
// Só caminhos conhecidos viram label; o resto é agrupado para não explodir a cardinalidade.
func Metrics(knownPaths ...string) func(http.Handler) http.Handler {
	known := make(map[string]bool, len(knownPaths))
	for _, p := range knownPaths {
		known[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			path := r.URL.Path
			if !known[path] {
				path = unmatchedPath
			}

			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(lrw.statusCode)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}
