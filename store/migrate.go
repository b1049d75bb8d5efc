package store

import (
    "context"
    "fmt"
)

// Schema for the bus service. Every statement is idempotent; Migrate runs
// once at process start, never on a request path.
var migrations = []string{
    `CREATE TABLE IF NOT EXISTS routes (
        id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        fare NUMERIC(10,2) NOT NULL CHECK (fare >= 0),
        duration INT NOT NULL CHECK (duration > 0),
        frequency INT NOT NULL CHECK (frequency > 0),
        type TEXT NOT NULL DEFAULT 'regular'
            CHECK (type IN ('regular', 'express', 'ac', 'luxury', 'semi-luxury')),
        created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,

    `CREATE TABLE IF NOT EXISTS stops (
        id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        latitude DOUBLE PRECISION NOT NULL CHECK (latitude BETWEEN -90 AND 90),
        longitude DOUBLE PRECISION NOT NULL CHECK (longitude BETWEEN -180 AND 180),
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,

    `CREATE TABLE IF NOT EXISTS route_stops (
        id BIGSERIAL PRIMARY KEY,
        route_id TEXT NOT NULL REFERENCES routes(id) ON DELETE CASCADE,
        stop_id TEXT NOT NULL REFERENCES stops(id) ON DELETE CASCADE,
        stop_order INT NOT NULL CHECK (stop_order >= 1),
        UNIQUE (route_id, stop_id)
    )`,
    `CREATE INDEX IF NOT EXISTS idx_route_stops_order ON route_stops (route_id, stop_order)`,

    `CREATE TABLE IF NOT EXISTS route_coordinates (
        id BIGSERIAL PRIMARY KEY,
        route_id TEXT NOT NULL REFERENCES routes(id) ON DELETE CASCADE,
        latitude DOUBLE PRECISION NOT NULL,
        longitude DOUBLE PRECISION NOT NULL,
        sequence_order INT NOT NULL CHECK (sequence_order >= 1),
        UNIQUE (route_id, sequence_order)
    )`,

    `CREATE TABLE IF NOT EXISTS buses (
        id TEXT PRIMARY KEY,
        route_id TEXT NOT NULL REFERENCES routes(id) ON DELETE CASCADE,
        bus_number TEXT NOT NULL,
        vehicle_type TEXT NOT NULL DEFAULT 'regular' CHECK (vehicle_type IN ('regular', 'ac')),
        total_seats INT NOT NULL DEFAULT 50 CHECK (total_seats > 0),
        status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive', 'maintenance')),
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,

    `CREATE TABLE IF NOT EXISTS bus_locations (
        id BIGSERIAL PRIMARY KEY,
        bus_id TEXT NOT NULL REFERENCES buses(id) ON DELETE CASCADE,
        latitude DOUBLE PRECISION NOT NULL,
        longitude DOUBLE PRECISION NOT NULL,
        current_stop_id TEXT REFERENCES stops(id),
        next_stop_id TEXT REFERENCES stops(id),
        occupied_seats INT NOT NULL DEFAULT 0 CHECK (occupied_seats >= 0),
        delay_minutes INT NOT NULL DEFAULT 0 CHECK (delay_minutes >= 0),
        delay_reason TEXT,
        timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
    `CREATE INDEX IF NOT EXISTS idx_bus_locations_bus_timestamp ON bus_locations (bus_id, timestamp DESC)`,

    `CREATE TABLE IF NOT EXISTS bus_arrivals (
        id BIGSERIAL PRIMARY KEY,
        bus_id TEXT NOT NULL REFERENCES buses(id) ON DELETE CASCADE,
        stop_id TEXT NOT NULL REFERENCES stops(id) ON DELETE CASCADE,
        estimated_arrival TIMESTAMPTZ NOT NULL,
        actual_arrival TIMESTAMPTZ,
        delay_minutes INT NOT NULL DEFAULT 0,
        capacity_status TEXT NOT NULL DEFAULT 'available'
            CHECK (capacity_status IN ('available', 'moderate', 'full')),
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
    `CREATE INDEX IF NOT EXISTS idx_bus_arrivals_stop_arrival ON bus_arrivals (stop_id, estimated_arrival)`,

    `CREATE TABLE IF NOT EXISTS user_favorites (
        id BIGSERIAL PRIMARY KEY,
        user_id TEXT NOT NULL,
        route_id TEXT NOT NULL REFERENCES routes(id) ON DELETE CASCADE,
        origin_stop_id TEXT REFERENCES stops(id),
        destination_stop_id TEXT REFERENCES stops(id),
        created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
        CONSTRAINT user_favorites_tuple_key
            UNIQUE NULLS NOT DISTINCT (user_id, route_id, origin_stop_id, destination_stop_id)
    )`,
}

// Migrate creates the schema if it does not already exist.
func (s *Store) Migrate(ctx context.Context) error {
    for _, stmt := range migrations {
        if _, err := s.db.ExecContext(ctx, stmt); err != nil {
            return fmt.Errorf("running migration: %w", err)
        }
    }
    return nil
}
