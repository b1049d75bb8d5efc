package models

import (
    "testing"
    "time"
)

func TestClassifyCapacity(t *testing.T) {
    tests := []struct {
        name     string
        occupied int
        total    int
        want     string
    }{
        {"empty bus", 0, 100, CapacityAvailable},
        {"just below moderate", 69, 100, CapacityAvailable},
        {"moderate boundary inclusive", 70, 100, CapacityModerate},
        {"between thresholds", 89, 100, CapacityModerate},
        {"full boundary inclusive", 90, 100, CapacityFull},
        {"completely full", 100, 100, CapacityFull},
        {"over capacity standing load", 120, 100, CapacityFull},
        {"small bus full boundary", 9, 10, CapacityFull},
        {"small bus moderate boundary", 7, 10, CapacityModerate},
        {"zero total seats", 5, 0, CapacityAvailable},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            if got := ClassifyCapacity(tt.occupied, tt.total); got != tt.want {
                t.Errorf("ClassifyCapacity(%d, %d) = %q, want %q", tt.occupied, tt.total, got, tt.want)
            }
        })
    }
}

func TestFormatBusState(t *testing.T) {
    ts := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
    currentStop := "Nugegoda"
    reason := "traffic"

    bus := LiveBus{
        BusID:           "bus-138-01",
        BusNumber:       "NB-1234",
        VehicleType:     VehicleAC,
        TotalSeats:      50,
        Latitude:        6.8717,
        Longitude:       79.8898,
        CurrentStopName: &currentStop,
        OccupiedSeats:   45,
        DelayMinutes:    8,
        DelayReason:     &reason,
        Timestamp:       &ts,
    }

    state := FormatBusState(bus, "138")

    if state.ID != "bus-138-01" {
        t.Errorf("ID = %q", state.ID)
    }
    if state.RouteID != "138" {
        t.Errorf("RouteID = %q, want filter value", state.RouteID)
    }
    if state.Position != [2]float64{6.8717, 79.8898} {
        t.Errorf("Position = %v", state.Position)
    }
    if state.Capacity.Available != 5 {
        t.Errorf("Capacity.Available = %d, want 5", state.Capacity.Available)
    }
    if state.Capacity.Status != CapacityFull {
        t.Errorf("Capacity.Status = %q, want full (45/50 is at the 90%% boundary)", state.Capacity.Status)
    }
    if state.Delay.Minutes != 8 || state.Delay.Reason == nil || *state.Delay.Reason != "traffic" {
        t.Errorf("Delay = %+v", state.Delay)
    }
    if state.LastUpdated == nil || *state.LastUpdated != ts.Format(time.RFC3339) {
        t.Errorf("LastUpdated = %v", state.LastUpdated)
    }
    if state.NextStop != nil {
        t.Errorf("NextStop = %v, want nil", state.NextStop)
    }
}

func TestFormatBusStateDefaults(t *testing.T) {
    state := FormatBusState(LiveBus{BusID: "b1", TotalSeats: 40}, "")

    if state.RouteID != "unknown" {
        t.Errorf("RouteID = %q, want unknown sentinel without a filter", state.RouteID)
    }
    if state.LastUpdated != nil {
        t.Errorf("LastUpdated = %v, want nil without a telemetry timestamp", state.LastUpdated)
    }
    if state.Capacity.Available != 40 {
        t.Errorf("Capacity.Available = %d", state.Capacity.Available)
    }
}
