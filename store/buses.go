package store

import (
    "context"
    "database/sql"
    "time"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/models"
)

// LiveWindow is the freshness threshold beyond which a telemetry report
// is no longer considered current.
const LiveWindow = 5 * time.Minute

// LiveBuses returns the newest telemetry report per bus within the live
// window, most recent first, optionally restricted to one route. A bus
// pinging several times in the window still appears exactly once.
func (s *Store) LiveBuses(ctx context.Context, routeID string) ([]models.LiveBus, error) {
    cutoff := time.Now().Add(-LiveWindow)

    query := `
        SELECT live.* FROM (
            SELECT DISTINCT ON (bl.bus_id)
                bl.bus_id, b.bus_number, b.vehicle_type, b.total_seats,
                bl.latitude, bl.longitude,
                s1.name AS current_stop_name, s2.name AS next_stop_name,
                bl.occupied_seats, bl.delay_minutes, bl.delay_reason, bl.timestamp
            FROM bus_locations bl
            JOIN buses b ON bl.bus_id = b.id
            LEFT JOIN stops s1 ON bl.current_stop_id = s1.id
            LEFT JOIN stops s2 ON bl.next_stop_id = s2.id
            WHERE bl.timestamp >= $1`
    args := []interface{}{cutoff}
    if routeID != "" {
        query += ` AND b.route_id = $2`
        args = append(args, routeID)
    }
    query += `
            ORDER BY bl.bus_id, bl.timestamp DESC
        ) live
        ORDER BY live.timestamp DESC`

    rows, err := s.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, storageErr("listing live buses", err)
    }
    defer rows.Close()

    buses := make([]models.LiveBus, 0)
    for rows.Next() {
        var (
            bus         models.LiveBus
            currentStop sql.NullString
            nextStop    sql.NullString
            delayReason sql.NullString
            timestamp   sql.NullTime
        )
        if err := rows.Scan(
            &bus.BusID, &bus.BusNumber, &bus.VehicleType, &bus.TotalSeats,
            &bus.Latitude, &bus.Longitude,
            &currentStop, &nextStop,
            &bus.OccupiedSeats, &bus.DelayMinutes, &delayReason, &timestamp,
        ); err != nil {
            return nil, storageErr("scanning live bus", err)
        }
        if currentStop.Valid {
            bus.CurrentStopName = &currentStop.String
        }
        if nextStop.Valid {
            bus.NextStopName = &nextStop.String
        }
        if delayReason.Valid {
            bus.DelayReason = &delayReason.String
        }
        if timestamp.Valid {
            bus.Timestamp = &timestamp.Time
        }
        buses = append(buses, bus)
    }
    return buses, rows.Err()
}

// InsertBusLocation appends one telemetry report. Referential failures
// (unknown bus or stop id) surface as foreign-key violations for the
// caller to classify.
func (s *Store) InsertBusLocation(ctx context.Context, loc models.BusLocation) error {
    _, err := s.db.ExecContext(ctx, `
        INSERT INTO bus_locations
            (bus_id, latitude, longitude, current_stop_id, next_stop_id,
             occupied_seats, delay_minutes, delay_reason)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
        loc.BusID, loc.Latitude, loc.Longitude, loc.CurrentStopID, loc.NextStopID,
        loc.OccupiedSeats, loc.DelayMinutes, loc.DelayReason,
    )
    if err != nil {
        if IsForeignKeyViolation(err) {
            return err
        }
        return storageErr("inserting bus location", err)
    }
    return nil
}
