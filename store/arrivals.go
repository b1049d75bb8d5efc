package store

import (
    "context"
    "database/sql"
    "time"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/models"
)

// ArrivalsForStop returns predictions for the stop with an estimated
// arrival at or after now, soonest first, capped at limit.
func (s *Store) ArrivalsForStop(ctx context.Context, stopID string, limit int, now time.Time) ([]models.BusArrival, error) {
    rows, err := s.db.QueryContext(ctx, `
        SELECT ba.bus_id, b.bus_number, b.vehicle_type, b.total_seats, r.name,
               ba.estimated_arrival, ba.actual_arrival, ba.delay_minutes, ba.capacity_status
        FROM bus_arrivals ba
        JOIN buses b ON ba.bus_id = b.id
        JOIN routes r ON b.route_id = r.id
        WHERE ba.stop_id = $1
        AND ba.estimated_arrival >= $2
        ORDER BY ba.estimated_arrival
        LIMIT $3`,
        stopID, now, limit)
    if err != nil {
        return nil, storageErr("listing arrivals", err)
    }
    defer rows.Close()

    arrivals := make([]models.BusArrival, 0)
    for rows.Next() {
        var (
            arrival models.BusArrival
            actual  sql.NullTime
        )
        if err := rows.Scan(
            &arrival.BusID, &arrival.BusNumber, &arrival.VehicleType, &arrival.TotalSeats,
            &arrival.RouteName, &arrival.EstimatedArrival, &actual,
            &arrival.DelayMinutes, &arrival.CapacityStatus,
        ); err != nil {
            return nil, storageErr("scanning arrival", err)
        }
        if actual.Valid {
            arrival.ActualArrival = &actual.Time
        }
        arrivals = append(arrivals, arrival)
    }
    return arrivals, rows.Err()
}
