package handlers

import (
    "encoding/json"
    "errors"
    "net/http"
    "reflect"
    "strings"
    "github.com/go-playground/validator/v10"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/metrics"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/models"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/store"
)

// Handler carries the service dependencies for every endpoint.
type Handler struct {
    store    *store.Store
    validate *validator.Validate
    metrics  *metrics.Collector
}

func New(st *store.Store, collector *metrics.Collector) *Handler {
    validate := validator.New()
    // Report the wire name of a failing field, not the Go field name.
    validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
        name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
        if name == "-" {
            return ""
        }
        return name
    })
    validate.RegisterValidation("latlng", models.CoordinateInRange)
    return &Handler{
        store:    st,
        validate: validate,
        metrics:  collector,
    }
}

// envelope is the JSON wrapper every endpoint returns.
type envelope struct {
    Success bool        `json:"success"`
    Data    interface{} `json:"data,omitempty"`
    Count   *int        `json:"count,omitempty"`
    Message string      `json:"message,omitempty"`
    Error   string      `json:"error,omitempty"`
}

func sendJSON(w http.ResponseWriter, status int, env envelope) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(env)
}

func sendData(w http.ResponseWriter, data interface{}, count int) {
    c := count
    sendJSON(w, http.StatusOK, envelope{Success: true, Data: data, Count: &c})
}

func sendMessage(w http.ResponseWriter, status int, message string) {
    sendJSON(w, status, envelope{Success: true, Message: message})
}

func sendErrorResponse(w http.ResponseWriter, message string, status int) {
    sendJSON(w, status, envelope{Success: false, Error: message})
}

// validationMessage turns the first validator failure into a client
// message. Driver/internal detail never reaches the client from here.
func validationMessage(err error) string {
    var verrs validator.ValidationErrors
    if errors.As(err, &verrs) && len(verrs) > 0 {
        field := verrs[0].Field()
        if verrs[0].Tag() == "required" {
            return "Missing required field: " + field
        }
        return "Invalid value for field: " + field
    }
    return "Invalid request payload"
}
