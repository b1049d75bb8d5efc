package models

import "time"

// BusArrival is a stored prediction row joined with its bus and route.
type BusArrival struct {
    BusID            string
    BusNumber        string
    RouteName        string
    VehicleType      string
    TotalSeats       int
    EstimatedArrival time.Time
    ActualArrival    *time.Time
    DelayMinutes     int
    CapacityStatus   string
}

// Arrival is the client-facing prediction record for one stop.
type Arrival struct {
    BusID            string          `json:"busId"`
    BusNumber        string          `json:"busNumber"`
    RouteName        string          `json:"routeName"`
    VehicleType      string          `json:"vehicleType"`
    ETA              int             `json:"eta"`
    EstimatedArrival string          `json:"estimatedArrival"`
    ActualArrival    *string         `json:"actualArrival"`
    Delay            int             `json:"delay"`
    Capacity         ArrivalCapacity `json:"capacity"`
}

type ArrivalCapacity struct {
    Status string `json:"status"`
    Total  int    `json:"total"`
}

// ETAMinutes converts a prediction timestamp to whole minutes from now,
// clamped at zero. Clock skew can put the estimate slightly in the past
// by the time it is formatted; that must never surface as a negative ETA.
func ETAMinutes(estimated, now time.Time) int {
    minutes := int(estimated.Sub(now) / time.Minute)
    if minutes < 0 {
        return 0
    }
    return minutes
}

// FormatArrival shapes a prediction row into the client record.
func FormatArrival(a BusArrival, now time.Time) Arrival {
    var actual *string
    if a.ActualArrival != nil {
        s := a.ActualArrival.Format(time.RFC3339)
        actual = &s
    }
    return Arrival{
        BusID:            a.BusID,
        BusNumber:        a.BusNumber,
        RouteName:        a.RouteName,
        VehicleType:      a.VehicleType,
        ETA:              ETAMinutes(a.EstimatedArrival, now),
        EstimatedArrival: a.EstimatedArrival.Format(time.RFC3339),
        ActualArrival:    actual,
        Delay:            a.DelayMinutes,
        Capacity: ArrivalCapacity{
            Status: a.CapacityStatus,
            Total:  a.TotalSeats,
        },
    }
}
