package handlers

import (
    "encoding/json"
    "log"
    "net/http"
    "github.com/gorilla/mux"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/models"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/store"
)

// GetUserFavorites lists a user's saved routes, newest first.
func (h *Handler) GetUserFavorites(w http.ResponseWriter, r *http.Request) {
    userID := mux.Vars(r)["user_id"]

    favorites, err := h.store.ListFavorites(r.Context(), userID)
    if err != nil {
        log.Printf("Error listing favorites for user %s: %v", userID, err)
        sendErrorResponse(w, "Failed to fetch favorites", http.StatusInternalServerError)
        return
    }
    sendData(w, favorites, len(favorites))
}

// AddUserFavorite saves a route for a user. Adding the same route with
// the same stop pair again just refreshes the timestamp.
func (h *Handler) AddUserFavorite(w http.ResponseWriter, r *http.Request) {
    userID := mux.Vars(r)["user_id"]

    var input models.FavoriteInput
    if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
        sendErrorResponse(w, "Invalid request format", http.StatusBadRequest)
        return
    }

    if err := h.validate.Struct(input); err != nil {
        sendErrorResponse(w, validationMessage(err), http.StatusBadRequest)
        return
    }

    if err := h.store.AddFavorite(r.Context(), userID, input); err != nil {
        if store.IsForeignKeyViolation(err) {
            sendErrorResponse(w, "Unknown route or stop id", http.StatusBadRequest)
            return
        }
        log.Printf("Error adding favorite for user %s: %v", userID, err)
        sendErrorResponse(w, "Failed to add favorite", http.StatusInternalServerError)
        return
    }

    sendMessage(w, http.StatusCreated, "Favorite added successfully")
}
