package handlers

import (
    "fmt"
    "log"
    "net/http"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/config"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/data"
)

// MigrateSampleData loads the bundled Sri Lanka routes through the normal
// upsert path. Safe to call repeatedly.
func (h *Handler) MigrateSampleData(w http.ResponseWriter, r *http.Request) {
    migrated := 0
    for _, route := range data.SampleRoutes() {
        if err := h.store.UpsertRoute(r.Context(), route); err != nil {
            log.Printf("Error migrating sample route %s: %v", route.ID, err)
            sendErrorResponse(w, "Data migration failed", http.StatusInternalServerError)
            return
        }
        migrated++
    }

    if config.RouteCache != nil {
        config.RouteCache.Delete(routeListCacheKey)
    }
    sendMessage(w, http.StatusOK, fmt.Sprintf("Data migration completed successfully (%d routes)", migrated))
}
