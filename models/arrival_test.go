package models

import (
    "testing"
    "time"
)

func TestETAMinutes(t *testing.T) {
    now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

    tests := []struct {
        name      string
        estimated time.Time
        want      int
    }{
        {"ten minutes out", now.Add(10 * time.Minute), 10},
        {"partial minute floors", now.Add(10*time.Minute + 59*time.Second), 10},
        {"under a minute", now.Add(30 * time.Second), 0},
        {"exactly now", now, 0},
        {"already passed", now.Add(-3 * time.Minute), 0},
        {"far future", now.Add(2 * time.Hour), 120},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            if got := ETAMinutes(tt.estimated, now); got != tt.want {
                t.Errorf("ETAMinutes(%v) = %d, want %d", tt.estimated, got, tt.want)
            }
        })
    }
}

func TestFormatArrival(t *testing.T) {
    now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
    estimated := now.Add(12 * time.Minute)

    row := BusArrival{
        BusID:            "bus-87-02",
        BusNumber:        "NC-5566",
        RouteName:        "Colombo Fort - Jaffna",
        VehicleType:      VehicleAC,
        TotalSeats:       54,
        EstimatedArrival: estimated,
        DelayMinutes:     4,
        CapacityStatus:   CapacityModerate,
    }

    arrival := FormatArrival(row, now)

    if arrival.ETA != 12 {
        t.Errorf("ETA = %d, want 12", arrival.ETA)
    }
    if arrival.EstimatedArrival != estimated.Format(time.RFC3339) {
        t.Errorf("EstimatedArrival = %q", arrival.EstimatedArrival)
    }
    if arrival.ActualArrival != nil {
        t.Errorf("ActualArrival = %v, want nil before the bus turns up", arrival.ActualArrival)
    }
    if arrival.Delay != 4 {
        t.Errorf("Delay = %d", arrival.Delay)
    }
    if arrival.Capacity.Status != CapacityModerate || arrival.Capacity.Total != 54 {
        t.Errorf("Capacity = %+v", arrival.Capacity)
    }
}

func TestFormatArrivalActualRecorded(t *testing.T) {
    now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
    actual := now.Add(-1 * time.Minute)

    row := BusArrival{
        BusID:            "bus-01-01",
        EstimatedArrival: now.Add(-2 * time.Minute),
        ActualArrival:    &actual,
    }

    arrival := FormatArrival(row, now)

    if arrival.ETA != 0 {
        t.Errorf("ETA = %d, want 0 for a passed estimate", arrival.ETA)
    }
    if arrival.ActualArrival == nil || *arrival.ActualArrival != actual.Format(time.RFC3339) {
        t.Errorf("ActualArrival = %v", arrival.ActualArrival)
    }
}
