package metrics

import (
    "net/http"
    "strconv"
    "time"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the service's Prometheus instruments behind one
// private registry.
type Collector struct {
    reg *prometheus.Registry

    Requests        *prometheus.CounterVec
    RequestDuration prometheus.Histogram

    TelemetryReports  prometheus.Counter
    TelemetryRejected prometheus.Counter
}

func NewCollector() *Collector {
    reg := prometheus.NewRegistry()

    c := &Collector{
        reg: reg,
        Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
            Name: "busapp_http_requests_total",
            Help: "Total HTTP requests by method, route and status.",
        }, []string{"method", "route", "status"}),
        RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
            Name:    "busapp_http_request_duration_seconds",
            Help:    "Duration of HTTP request handling.",
            Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
        }),
        TelemetryReports: prometheus.NewCounter(prometheus.CounterOpts{
            Name: "busapp_telemetry_reports_total",
            Help: "Total bus location reports accepted.",
        }),
        TelemetryRejected: prometheus.NewCounter(prometheus.CounterOpts{
            Name: "busapp_telemetry_rejected_total",
            Help: "Total bus location reports rejected before or by storage.",
        }),
    }

    reg.MustRegister(
        c.Requests, c.RequestDuration,
        c.TelemetryReports, c.TelemetryRejected,
    )

    return c
}

// ObserveRequest records one handled HTTP request.
func (c *Collector) ObserveRequest(method, route string, status int, d time.Duration) {
    c.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
    c.RequestDuration.Observe(d.Seconds())
}

func (c *Collector) Handler() http.Handler {
    return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
