package handlers

import (
    "encoding/json"
    "net/http"
    "time"
)

// Health reports process liveness and storage connectivity.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
    status := "healthy"
    database := "connected"
    if err := h.store.Ping(r.Context()); err != nil {
        status = "degraded"
        database = "disconnected"
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "status":    status,
        "database":  database,
        "timestamp": time.Now().Format(time.RFC3339),
    })
}
