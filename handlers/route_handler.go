package handlers

import (
    "encoding/json"
    "errors"
    "log"
    "net/http"
    "github.com/gorilla/mux"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/config"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/models"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/store"
)

var routeListCacheKey = config.GetCacheKey("routes", "all")

// GetRoutes lists all routes, or searches by origin and destination.
// The filters only work as a pair: a matched route carries the rider from
// somewhere matching origin to somewhere matching destination, in that
// order.
func (h *Handler) GetRoutes(w http.ResponseWriter, r *http.Request) {
    origin := r.URL.Query().Get("origin")
    destination := r.URL.Query().Get("destination")

    if (origin == "") != (destination == "") {
        sendErrorResponse(w, "Both origin and destination are required for filtering", http.StatusBadRequest)
        return
    }

    unfiltered := origin == "" && destination == ""
    if unfiltered && config.RouteCache != nil {
        if cached, found := config.RouteCache.Get(routeListCacheKey); found {
            routes := cached.([]models.Route)
            sendData(w, routes, len(routes))
            return
        }
    }

    routes, err := h.store.ListRoutes(r.Context(), origin, destination)
    if err != nil {
        log.Printf("Error listing routes: %v", err)
        sendErrorResponse(w, "Failed to fetch routes", http.StatusInternalServerError)
        return
    }

    if unfiltered && config.RouteCache != nil {
        config.RouteCache.SetDefault(routeListCacheKey, routes)
    }
    sendData(w, routes, len(routes))
}

// GetRoute returns one route by id.
func (h *Handler) GetRoute(w http.ResponseWriter, r *http.Request) {
    routeID := mux.Vars(r)["route_id"]

    route, err := h.store.GetRoute(r.Context(), routeID)
    if err != nil {
        if errors.Is(err, store.ErrNotFound) {
            sendErrorResponse(w, "Route not found", http.StatusNotFound)
            return
        }
        log.Printf("Error getting route %s: %v", routeID, err)
        sendErrorResponse(w, "Failed to fetch route", http.StatusInternalServerError)
        return
    }

    sendJSON(w, http.StatusOK, envelope{Success: true, Data: route})
}

// CreateRoute upserts a route with its stops and polyline.
func (h *Handler) CreateRoute(w http.ResponseWriter, r *http.Request) {
    var input models.RouteInput
    if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
        sendErrorResponse(w, "Invalid request format", http.StatusBadRequest)
        return
    }

    if err := h.validate.Struct(input); err != nil {
        sendErrorResponse(w, validationMessage(err), http.StatusBadRequest)
        return
    }

    if err := h.store.UpsertRoute(r.Context(), input); err != nil {
        log.Printf("Error upserting route %s: %v", input.ID, err)
        sendErrorResponse(w, "Failed to create route", http.StatusInternalServerError)
        return
    }

    if config.RouteCache != nil {
        config.RouteCache.Delete(routeListCacheKey)
    }
    sendMessage(w, http.StatusCreated, "Route created successfully")
}

// SearchRoutes is the advanced search used by the journey planner. Only
// direct routes are computed; transfer planning is not implemented, so
// transfer_routes is always empty.
func (h *Handler) SearchRoutes(w http.ResponseWriter, r *http.Request) {
    origin := r.URL.Query().Get("origin")
    destination := r.URL.Query().Get("destination")

    if origin == "" || destination == "" {
        sendErrorResponse(w, "Both origin and destination are required", http.StatusBadRequest)
        return
    }

    directRoutes, err := h.store.ListRoutes(r.Context(), origin, destination)
    if err != nil {
        log.Printf("Error searching routes: %v", err)
        sendErrorResponse(w, "Failed to search routes", http.StatusInternalServerError)
        return
    }

    results := map[string]interface{}{
        "direct_routes":   directRoutes,
        "transfer_routes": []models.Route{},
    }
    sendJSON(w, http.StatusOK, envelope{Success: true, Data: results})
}
