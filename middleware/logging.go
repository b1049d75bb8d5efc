package middleware

import (
    "log"
    "net/http"
    "time"
    "github.com/google/uuid"
)

func LoggingMiddleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        start := time.Now()
        requestID := uuid.NewString()
        w.Header().Set("X-Request-ID", requestID)

        // Custom response writer to capture status code
        wrw := &responseWriter{
            ResponseWriter: w,
            status:         http.StatusOK,
        }

        next.ServeHTTP(wrw, r)

        duration := time.Since(start)
        log.Printf(
            "%s - %s [%s] %s %s %d %v",
            requestID,
            r.RemoteAddr,
            time.Now().Format(time.RFC3339),
            r.Method,
            r.URL.Path,
            wrw.status,
            duration,
        )
    })
}

type responseWriter struct {
    http.ResponseWriter
    status int
}

func (rw *responseWriter) WriteHeader(code int) {
    rw.status = code
    rw.ResponseWriter.WriteHeader(code)
}
