package store

import (
    "context"
    "database/sql"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/models"
)

const routeColumns = `r.id, r.name, r.origin, r.destination, r.fare, r.duration, r.frequency, r.type, r.created_at, r.updated_at`

// ListRoutes returns routes ordered by id, each hydrated with its ordered
// stop list and polyline. With both filters set, a route matches when one
// of its stops (or its own origin field) matches origin, another stop (or
// its destination field) matches destination, and the origin stop comes
// strictly before the destination stop. Matching is a case-insensitive
// substring match.
func (s *Store) ListRoutes(ctx context.Context, origin, destination string) ([]models.Route, error) {
    var (
        rows *sql.Rows
        err  error
    )

    if origin != "" && destination != "" {
        rows, err = s.db.QueryContext(ctx, `
            SELECT DISTINCT `+routeColumns+`
            FROM routes r
            JOIN route_stops rs1 ON r.id = rs1.route_id
            JOIN stops s1 ON rs1.stop_id = s1.id
            JOIN route_stops rs2 ON r.id = rs2.route_id
            JOIN stops s2 ON rs2.stop_id = s2.id
            WHERE (s1.name ILIKE '%' || $1 || '%' OR r.origin ILIKE '%' || $1 || '%')
            AND (s2.name ILIKE '%' || $2 || '%' OR r.destination ILIKE '%' || $2 || '%')
            AND rs1.stop_order < rs2.stop_order
            ORDER BY r.id`,
            origin, destination)
    } else {
        rows, err = s.db.QueryContext(ctx, `
            SELECT `+routeColumns+`
            FROM routes r
            ORDER BY r.id`)
    }
    if err != nil {
        return nil, storageErr("listing routes", err)
    }
    defer rows.Close()

    routes := make([]models.Route, 0)
    for rows.Next() {
        var route models.Route
        if err := rows.Scan(
            &route.ID, &route.Name, &route.Origin, &route.Destination,
            &route.Fare, &route.Duration, &route.Frequency, &route.Type,
            &route.CreatedAt, &route.UpdatedAt,
        ); err != nil {
            return nil, storageErr("scanning route", err)
        }
        routes = append(routes, route)
    }
    if err := rows.Err(); err != nil {
        return nil, storageErr("listing routes", err)
    }

    for i := range routes {
        if err := s.hydrateRoute(ctx, &routes[i]); err != nil {
            return nil, err
        }
    }
    return routes, nil
}

// GetRoute returns a single hydrated route, or ErrNotFound.
func (s *Store) GetRoute(ctx context.Context, id string) (*models.Route, error) {
    var route models.Route
    err := s.db.QueryRowContext(ctx, `
        SELECT `+routeColumns+`
        FROM routes r
        WHERE r.id = $1`, id).Scan(
        &route.ID, &route.Name, &route.Origin, &route.Destination,
        &route.Fare, &route.Duration, &route.Frequency, &route.Type,
        &route.CreatedAt, &route.UpdatedAt,
    )
    if err != nil {
        return nil, storageErr("getting route", err)
    }
    if err := s.hydrateRoute(ctx, &route); err != nil {
        return nil, err
    }
    return &route, nil
}

// hydrateRoute attaches the ordered stop list and coordinate polyline.
// Ordering is a correctness invariant, not cosmetics: the client draws the
// route from these lists as-is.
func (s *Store) hydrateRoute(ctx context.Context, route *models.Route) error {
    stopRows, err := s.db.QueryContext(ctx, `
        SELECT st.id, st.name, st.latitude, st.longitude, rs.stop_order
        FROM stops st
        JOIN route_stops rs ON st.id = rs.stop_id
        WHERE rs.route_id = $1
        ORDER BY rs.stop_order`, route.ID)
    if err != nil {
        return storageErr("listing route stops", err)
    }
    defer stopRows.Close()

    route.Stops = make([]models.RouteStop, 0)
    for stopRows.Next() {
        var stop models.RouteStop
        if err := stopRows.Scan(&stop.ID, &stop.Name, &stop.Latitude, &stop.Longitude, &stop.Order); err != nil {
            return storageErr("scanning route stop", err)
        }
        route.Stops = append(route.Stops, stop)
    }
    if err := stopRows.Err(); err != nil {
        return storageErr("listing route stops", err)
    }

    coordRows, err := s.db.QueryContext(ctx, `
        SELECT latitude, longitude
        FROM route_coordinates
        WHERE route_id = $1
        ORDER BY sequence_order`, route.ID)
    if err != nil {
        return storageErr("listing route coordinates", err)
    }
    defer coordRows.Close()

    route.Coordinates = make([]models.Coordinate, 0)
    for coordRows.Next() {
        var lat, lng float64
        if err := coordRows.Scan(&lat, &lng); err != nil {
            return storageErr("scanning route coordinate", err)
        }
        route.Coordinates = append(route.Coordinates, models.Coordinate{lat, lng})
    }
    return coordRows.Err()
}

// UpsertRoute writes the route, its stops, the order links and the
// polyline in one transaction. The route and each stop are upserted by
// id; order links by (route, stop). Coordinates are replaced wholesale
// and renumbered from 1 by list position, so the previous polyline is
// cleared first.
func (s *Store) UpsertRoute(ctx context.Context, in models.RouteInput) error {
    routeType := in.Type
    if routeType == "" {
        routeType = models.RouteRegular
    }

    err := s.WithTransaction(ctx, func(tx *sql.Tx) error {
        if _, err := tx.ExecContext(ctx, `
            INSERT INTO routes (id, name, origin, destination, fare, duration, frequency, type)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
            ON CONFLICT (id) DO UPDATE SET
                name = EXCLUDED.name,
                origin = EXCLUDED.origin,
                destination = EXCLUDED.destination,
                fare = EXCLUDED.fare,
                duration = EXCLUDED.duration,
                frequency = EXCLUDED.frequency,
                type = EXCLUDED.type,
                updated_at = now()`,
            in.ID, in.Name, in.Origin, in.Destination,
            *in.Fare, *in.Duration, *in.Frequency, routeType,
        ); err != nil {
            return err
        }

        for _, stop := range in.Stops {
            if _, err := tx.ExecContext(ctx, `
                INSERT INTO stops (id, name, latitude, longitude)
                VALUES ($1, $2, $3, $4)
                ON CONFLICT (id) DO UPDATE SET
                    name = EXCLUDED.name,
                    latitude = EXCLUDED.latitude,
                    longitude = EXCLUDED.longitude`,
                stop.ID, stop.Name, stop.Latitude, stop.Longitude,
            ); err != nil {
                return err
            }

            if _, err := tx.ExecContext(ctx, `
                INSERT INTO route_stops (route_id, stop_id, stop_order)
                VALUES ($1, $2, $3)
                ON CONFLICT (route_id, stop_id) DO UPDATE SET
                    stop_order = EXCLUDED.stop_order`,
                in.ID, stop.ID, stop.Order,
            ); err != nil {
                return err
            }
        }

        if _, err := tx.ExecContext(ctx, `
            DELETE FROM route_coordinates WHERE route_id = $1`, in.ID,
        ); err != nil {
            return err
        }
        for i, coord := range in.Coordinates {
            if _, err := tx.ExecContext(ctx, `
                INSERT INTO route_coordinates (route_id, latitude, longitude, sequence_order)
                VALUES ($1, $2, $3, $4)`,
                in.ID, coord[0], coord[1], i+1,
            ); err != nil {
                return err
            }
        }

        return nil
    })
    if err != nil {
        return storageErr("upserting route", err)
    }
    return nil
}
