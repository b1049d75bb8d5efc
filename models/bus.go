package models

import "time"

// Vehicle types accepted by the buses table. Route categories are wider;
// a luxury route is still operated by regular or ac vehicles.
const (
    VehicleRegular = "regular"
    VehicleAC      = "ac"
)

// Capacity buckets derived from occupied vs total seats.
const (
    CapacityAvailable = "available"
    CapacityModerate  = "moderate"
    CapacityFull      = "full"
)

// BusLocation is one append-only telemetry report. Rows are never updated
// in place; the newest row per bus within the live window is the bus's
// current position.
type BusLocation struct {
    BusID         string
    Latitude      float64
    Longitude     float64
    CurrentStopID *string
    NextStopID    *string
    OccupiedSeats int
    DelayMinutes  int
    DelayReason   *string
}

// LiveBus is a telemetry row joined with its bus and stop names, as read
// back from storage.
type LiveBus struct {
    BusID           string
    BusNumber       string
    VehicleType     string
    TotalSeats      int
    Latitude        float64
    Longitude       float64
    CurrentStopName *string
    NextStopName    *string
    OccupiedSeats   int
    DelayMinutes    int
    DelayReason     *string
    Timestamp       *time.Time
}

// BusState is the client-facing record for one live bus.
type BusState struct {
    ID          string     `json:"id"`
    RouteID     string     `json:"routeId"`
    BusNumber   string     `json:"busNumber"`
    Position    [2]float64 `json:"position"`
    CurrentStop *string    `json:"currentStop"`
    NextStop    *string    `json:"nextStop"`
    VehicleType string     `json:"vehicleType"`
    Capacity    Capacity   `json:"capacity"`
    Delay       Delay      `json:"delay"`
    LastUpdated *string    `json:"lastUpdated"`
}

type Capacity struct {
    Total     int    `json:"total"`
    Occupied  int    `json:"occupied"`
    Available int    `json:"available"`
    Status    string `json:"status"`
}

type Delay struct {
    Minutes int     `json:"minutes"`
    Reason  *string `json:"reason"`
}

// ClassifyCapacity buckets occupancy into available/moderate/full.
// Boundaries are inclusive: 90% of seats is already full, 70% moderate.
func ClassifyCapacity(occupied, total int) string {
    if total <= 0 {
        return CapacityAvailable
    }
    switch {
    case float64(occupied) >= 0.9*float64(total):
        return CapacityFull
    case float64(occupied) >= 0.7*float64(total):
        return CapacityModerate
    default:
        return CapacityAvailable
    }
}

// FormatBusState shapes a joined telemetry row into the client record.
// routeID carries the caller's filter value; without one the route is
// reported as "unknown".
func FormatBusState(b LiveBus, routeID string) BusState {
    if routeID == "" {
        routeID = "unknown"
    }
    var lastUpdated *string
    if b.Timestamp != nil {
        s := b.Timestamp.Format(time.RFC3339)
        lastUpdated = &s
    }
    return BusState{
        ID:          b.BusID,
        RouteID:     routeID,
        BusNumber:   b.BusNumber,
        Position:    [2]float64{b.Latitude, b.Longitude},
        CurrentStop: b.CurrentStopName,
        NextStop:    b.NextStopName,
        VehicleType: b.VehicleType,
        Capacity: Capacity{
            Total:     b.TotalSeats,
            Occupied:  b.OccupiedSeats,
            Available: b.TotalSeats - b.OccupiedSeats,
            Status:    ClassifyCapacity(b.OccupiedSeats, b.TotalSeats),
        },
        Delay: Delay{
            Minutes: b.DelayMinutes,
            Reason:  b.DelayReason,
        },
        LastUpdated: lastUpdated,
    }
}
