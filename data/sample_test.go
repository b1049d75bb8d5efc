package data

import (
    "testing"
    "github.com/go-playground/validator/v10"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/models"
)

func TestSampleRoutesValid(t *testing.T) {
    validate := validator.New()
    validate.RegisterValidation("latlng", models.CoordinateInRange)
    routes := SampleRoutes()

    if len(routes) == 0 {
        t.Fatal("no sample routes")
    }

    seen := make(map[string]bool)
    for _, route := range routes {
        if seen[route.ID] {
            t.Errorf("duplicate route id %q", route.ID)
        }
        seen[route.ID] = true

        if err := validate.Struct(route); err != nil {
            t.Errorf("route %q fails validation: %v", route.ID, err)
        }
        if len(route.Coordinates) == 0 {
            t.Errorf("route %q has no polyline", route.ID)
        }
        for i, coord := range route.Coordinates {
            if coord[0] < -90 || coord[0] > 90 || coord[1] < -180 || coord[1] > 180 {
                t.Errorf("route %q coordinate %d out of range: %v", route.ID, i, coord)
            }
        }
    }
}

func TestSampleRouteStopOrdering(t *testing.T) {
    for _, route := range SampleRoutes() {
        seenStops := make(map[string]bool)
        prev := 0
        for _, stop := range route.Stops {
            if seenStops[stop.ID] {
                t.Errorf("route %q repeats stop %q", route.ID, stop.ID)
            }
            seenStops[stop.ID] = true

            if stop.Order <= prev {
                t.Errorf("route %q stop %q order %d not strictly increasing after %d", route.ID, stop.ID, stop.Order, prev)
            }
            prev = stop.Order
        }

        if route.Stops[0].Name != route.Origin {
            t.Errorf("route %q first stop %q, want origin %q", route.ID, route.Stops[0].Name, route.Origin)
        }
        last := route.Stops[len(route.Stops)-1]
        if last.Name != route.Destination {
            t.Errorf("route %q last stop %q, want destination %q", route.ID, last.Name, route.Destination)
        }
    }
}
