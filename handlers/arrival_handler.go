package handlers

import (
    "log"
    "net/http"
    "strconv"
    "time"
    "github.com/gorilla/mux"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/models"
)

const defaultArrivalLimit = 10

// GetStopArrivals returns upcoming predicted arrivals for a stop,
// soonest first.
func (h *Handler) GetStopArrivals(w http.ResponseWriter, r *http.Request) {
    stopID := mux.Vars(r)["stop_id"]

    limit := defaultArrivalLimit
    if raw := r.URL.Query().Get("limit"); raw != "" {
        if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
            limit = parsed
        }
    }

    now := time.Now()
    arrivals, err := h.store.ArrivalsForStop(r.Context(), stopID, limit, now)
    if err != nil {
        log.Printf("Error listing arrivals for stop %s: %v", stopID, err)
        sendErrorResponse(w, "Failed to fetch arrivals", http.StatusInternalServerError)
        return
    }

    formatted := make([]models.Arrival, len(arrivals))
    for i, arrival := range arrivals {
        formatted[i] = models.FormatArrival(arrival, now)
    }
    sendData(w, formatted, len(formatted))
}
