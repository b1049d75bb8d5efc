package middleware

import (
    "net/http"
    "time"
    "github.com/gorilla/mux"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/metrics"
)

// MetricsMiddleware records request counts and latency. Routes are
// labeled by their mux path template so path parameters do not explode
// the label cardinality.
func MetricsMiddleware(collector *metrics.Collector) mux.MiddlewareFunc {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            start := time.Now()

            wrw := &responseWriter{
                ResponseWriter: w,
                status:         http.StatusOK,
            }

            next.ServeHTTP(wrw, r)

            route := r.URL.Path
            if current := mux.CurrentRoute(r); current != nil {
                if template, err := current.GetPathTemplate(); err == nil {
                    route = template
                }
            }
            collector.ObserveRequest(r.Method, route, wrw.status, time.Since(start))
        })
    }
}
