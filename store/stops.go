package store

import (
    "context"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/models"
)

// ListStops returns every stop in the system, ordered by name.
func (s *Store) ListStops(ctx context.Context) ([]models.Stop, error) {
    rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, latitude, longitude
        FROM stops
        ORDER BY name`)
    if err != nil {
        return nil, storageErr("listing stops", err)
    }
    defer rows.Close()

    stops := make([]models.Stop, 0)
    for rows.Next() {
        var stop models.Stop
        if err := rows.Scan(&stop.ID, &stop.Name, &stop.Latitude, &stop.Longitude); err != nil {
            return nil, storageErr("scanning stop", err)
        }
        stops = append(stops, stop)
    }
    return stops, rows.Err()
}
