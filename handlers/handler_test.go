package handlers

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "github.com/gorilla/mux"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/metrics"
)

func newTestHandler() *Handler {
    return New(nil, metrics.NewCollector())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
    t.Helper()
    var env envelope
    if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
        t.Fatalf("response is not valid JSON: %v", err)
    }
    return env
}

func TestGetRoutesRejectsSingleFilter(t *testing.T) {
    h := newTestHandler()

    for _, query := range []string{"?origin=Colombo", "?destination=Kandy"} {
        req := httptest.NewRequest("GET", "/api/routes"+query, nil)
        rec := httptest.NewRecorder()

        h.GetRoutes(rec, req)

        if rec.Code != http.StatusBadRequest {
            t.Errorf("%s: status = %d, want 400", query, rec.Code)
        }
        env := decodeEnvelope(t, rec)
        if env.Success {
            t.Errorf("%s: success = true on an error response", query)
        }
        if env.Error != "Both origin and destination are required for filtering" {
            t.Errorf("%s: error = %q", query, env.Error)
        }
    }
}

func TestCreateRouteRejectsMalformedJSON(t *testing.T) {
    h := newTestHandler()

    req := httptest.NewRequest("POST", "/api/routes", strings.NewReader("{not json"))
    rec := httptest.NewRecorder()

    h.CreateRoute(rec, req)

    if rec.Code != http.StatusBadRequest {
        t.Errorf("status = %d, want 400", rec.Code)
    }
    if env := decodeEnvelope(t, rec); env.Error != "Invalid request format" {
        t.Errorf("error = %q", env.Error)
    }
}

func TestCreateRouteReportsMissingField(t *testing.T) {
    h := newTestHandler()

    // Complete except for fare.
    body := `{
        "id": "99",
        "name": "Test Route",
        "origin": "A",
        "destination": "B",
        "duration": 60,
        "frequency": 15,
        "type": "regular",
        "stops": [{"id": "s1", "name": "A", "lat": 6.9, "lng": 79.8, "order": 1}],
        "coordinates": [[6.9, 79.8]]
    }`
    req := httptest.NewRequest("POST", "/api/routes", strings.NewReader(body))
    rec := httptest.NewRecorder()

    h.CreateRoute(rec, req)

    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
    env := decodeEnvelope(t, rec)
    if env.Error != "Missing required field: fare" {
        t.Errorf("error = %q, want the wire name of the missing field", env.Error)
    }
}

func TestCreateRouteRejectsUnknownType(t *testing.T) {
    h := newTestHandler()

    body := `{
        "id": "99",
        "name": "Test Route",
        "origin": "A",
        "destination": "B",
        "fare": 100,
        "duration": 60,
        "frequency": 15,
        "type": "hovercraft",
        "stops": [{"id": "s1", "name": "A", "lat": 6.9, "lng": 79.8, "order": 1}],
        "coordinates": [[6.9, 79.8]]
    }`
    req := httptest.NewRequest("POST", "/api/routes", strings.NewReader(body))
    rec := httptest.NewRecorder()

    h.CreateRoute(rec, req)

    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
    env := decodeEnvelope(t, rec)
    if env.Error != "Invalid value for field: type" {
        t.Errorf("error = %q", env.Error)
    }
}

func TestCreateRouteRejectsOutOfRangeCoordinate(t *testing.T) {
    h := newTestHandler()

    body := `{
        "id": "99",
        "name": "Test Route",
        "origin": "A",
        "destination": "B",
        "fare": 100,
        "duration": 60,
        "frequency": 15,
        "type": "regular",
        "stops": [{"id": "s1", "name": "A", "lat": 6.9, "lng": 79.8, "order": 1}],
        "coordinates": [[6.9, 79.8], [95.0, 79.8]]
    }`
    req := httptest.NewRequest("POST", "/api/routes", strings.NewReader(body))
    rec := httptest.NewRecorder()

    h.CreateRoute(rec, req)

    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
    env := decodeEnvelope(t, rec)
    if !strings.Contains(env.Error, "coordinates") {
        t.Errorf("error = %q, want the coordinates field named", env.Error)
    }
}

func TestUpdateBusLocationValidation(t *testing.T) {
    tests := []struct {
        name      string
        body      string
        wantError string
    }{
        {
            "missing longitude",
            `{"latitude": 6.9, "occupied_seats": 10}`,
            "Missing required field: longitude",
        },
        {
            "latitude out of range",
            `{"latitude": 95.0, "longitude": 79.8}`,
            "Invalid value for field: latitude",
        },
        {
            "negative occupancy",
            `{"latitude": 6.9, "longitude": 79.8, "occupied_seats": -1}`,
            "Invalid value for field: occupied_seats",
        },
        {
            "negative delay",
            `{"latitude": 6.9, "longitude": 79.8, "delay_minutes": -5}`,
            "Invalid value for field: delay_minutes",
        },
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            h := newTestHandler()
            req := httptest.NewRequest("POST", "/api/buses/bus-1/location", strings.NewReader(tt.body))
            req = mux.SetURLVars(req, map[string]string{"bus_id": "bus-1"})
            rec := httptest.NewRecorder()

            h.UpdateBusLocation(rec, req)

            if rec.Code != http.StatusBadRequest {
                t.Errorf("status = %d, want 400", rec.Code)
            }
            if env := decodeEnvelope(t, rec); env.Error != tt.wantError {
                t.Errorf("error = %q, want %q", env.Error, tt.wantError)
            }
        })
    }
}

func TestSearchRoutesRequiresBothParams(t *testing.T) {
    h := newTestHandler()

    for _, query := range []string{"", "?origin=Colombo", "?destination=Kandy"} {
        req := httptest.NewRequest("GET", "/api/search/routes"+query, nil)
        rec := httptest.NewRecorder()

        h.SearchRoutes(rec, req)

        if rec.Code != http.StatusBadRequest {
            t.Errorf("query %q: status = %d, want 400", query, rec.Code)
        }
    }
}

func TestAddUserFavoriteRequiresRouteID(t *testing.T) {
    h := newTestHandler()

    req := httptest.NewRequest("POST", "/api/users/u1/favorites", strings.NewReader(`{"origin_stop_id": "s1"}`))
    req = mux.SetURLVars(req, map[string]string{"user_id": "u1"})
    rec := httptest.NewRecorder()

    h.AddUserFavorite(rec, req)

    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
    env := decodeEnvelope(t, rec)
    if env.Error != "Missing required field: route_id" {
        t.Errorf("error = %q", env.Error)
    }
}

func TestGetNearbyStopsValidation(t *testing.T) {
    tests := []struct {
        name  string
        query string
    }{
        {"no coordinates", ""},
        {"missing lng", "?lat=6.9"},
        {"non-numeric lat", "?lat=abc&lng=79.8"},
        {"latitude out of range", "?lat=91&lng=79.8"},
        {"longitude out of range", "?lat=6.9&lng=181"},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            h := newTestHandler()
            req := httptest.NewRequest("GET", "/api/stops/nearby"+tt.query, nil)
            rec := httptest.NewRecorder()

            h.GetNearbyStops(rec, req)

            if rec.Code != http.StatusBadRequest {
                t.Errorf("status = %d, want 400", rec.Code)
            }
        })
    }
}
