package handlers

import (
    "encoding/json"
    "log"
    "net/http"
    "github.com/gorilla/mux"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/models"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/store"
)

// GetLiveBuses returns the current state of buses reporting within the
// live window, optionally restricted to one route.
func (h *Handler) GetLiveBuses(w http.ResponseWriter, r *http.Request) {
    routeID := r.URL.Query().Get("route_id")

    buses, err := h.store.LiveBuses(r.Context(), routeID)
    if err != nil {
        log.Printf("Error listing live buses: %v", err)
        sendErrorResponse(w, "Failed to fetch live buses", http.StatusInternalServerError)
        return
    }

    states := make([]models.BusState, len(buses))
    for i, bus := range buses {
        states[i] = models.FormatBusState(bus, routeID)
    }
    sendData(w, states, len(states))
}

type locationRequest struct {
    Latitude      *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
    Longitude     *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
    CurrentStopID *string  `json:"current_stop_id"`
    NextStopID    *string  `json:"next_stop_id"`
    OccupiedSeats int      `json:"occupied_seats" validate:"gte=0"`
    DelayMinutes  int      `json:"delay_minutes" validate:"gte=0"`
    DelayReason   *string  `json:"delay_reason"`
}

// UpdateBusLocation ingests one telemetry report for a bus.
func (h *Handler) UpdateBusLocation(w http.ResponseWriter, r *http.Request) {
    busID := mux.Vars(r)["bus_id"]

    var req locationRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        h.metrics.TelemetryRejected.Inc()
        sendErrorResponse(w, "Invalid request format", http.StatusBadRequest)
        return
    }

    if err := h.validate.Struct(req); err != nil {
        h.metrics.TelemetryRejected.Inc()
        sendErrorResponse(w, validationMessage(err), http.StatusBadRequest)
        return
    }

    err := h.store.InsertBusLocation(r.Context(), models.BusLocation{
        BusID:         busID,
        Latitude:      *req.Latitude,
        Longitude:     *req.Longitude,
        CurrentStopID: req.CurrentStopID,
        NextStopID:    req.NextStopID,
        OccupiedSeats: req.OccupiedSeats,
        DelayMinutes:  req.DelayMinutes,
        DelayReason:   req.DelayReason,
    })
    if err != nil {
        h.metrics.TelemetryRejected.Inc()
        if store.IsForeignKeyViolation(err) {
            sendErrorResponse(w, "Unknown bus or stop id", http.StatusBadRequest)
            return
        }
        log.Printf("Error inserting location for bus %s: %v", busID, err)
        sendErrorResponse(w, "Failed to update bus location", http.StatusInternalServerError)
        return
    }

    h.metrics.TelemetryReports.Inc()
    sendMessage(w, http.StatusOK, "Bus location updated successfully")
}
