package handlers

import (
    "log"
    "net/http"
    "sort"
    "strconv"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/models"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/utils"
)

const defaultNearbyRadiusKm = 2.0

// GetNearbyStops returns stops within a radius of the given position,
// nearest first. The radius accepts plain kilometers or a "km" suffix.
func (h *Handler) GetNearbyStops(w http.ResponseWriter, r *http.Request) {
    lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
    lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
    if latErr != nil || lngErr != nil {
        sendErrorResponse(w, "Valid lat and lng are required", http.StatusBadRequest)
        return
    }
    if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
        sendErrorResponse(w, "Coordinates out of range", http.StatusBadRequest)
        return
    }

    radius := defaultNearbyRadiusKm
    if raw := r.URL.Query().Get("radius"); raw != "" {
        if parsed := utils.ParseDistance(raw); parsed > 0 {
            radius = parsed
        }
    }

    stops, err := h.store.ListStops(r.Context())
    if err != nil {
        log.Printf("Error listing stops: %v", err)
        sendErrorResponse(w, "Failed to fetch stops", http.StatusInternalServerError)
        return
    }

    nearby := make([]models.NearbyStop, 0)
    for _, stop := range stops {
        distance := utils.CalculateDistance(lat, lng, stop.Latitude, stop.Longitude)
        if distance <= radius {
            nearby = append(nearby, models.NearbyStop{Stop: stop, DistanceKm: distance})
        }
    }
    sort.Slice(nearby, func(i, j int) bool {
        return nearby[i].DistanceKm < nearby[j].DistanceKm
    })

    sendData(w, nearby, len(nearby))
}
