package store

import (
    "context"
    "database/sql"
    "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/models"
)

// AddFavorite saves a route for a user. Re-adding an identical
// (user, route, origin stop, destination stop) tuple refreshes its
// created_at instead of inserting a second row.
func (s *Store) AddFavorite(ctx context.Context, userID string, in models.FavoriteInput) error {
    _, err := s.db.ExecContext(ctx, `
        INSERT INTO user_favorites (user_id, route_id, origin_stop_id, destination_stop_id)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT ON CONSTRAINT user_favorites_tuple_key
        DO UPDATE SET created_at = now()`,
        userID, in.RouteID, in.OriginStopID, in.DestinationStopID,
    )
    if err != nil {
        if IsForeignKeyViolation(err) {
            return err
        }
        return storageErr("adding favorite", err)
    }
    return nil
}

// ListFavorites returns a user's saved routes joined with route and stop
// display names, newest first.
func (s *Store) ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
    rows, err := s.db.QueryContext(ctx, `
        SELECT uf.id, uf.user_id, uf.route_id, r.name, r.origin, r.destination,
               uf.origin_stop_id, uf.destination_stop_id,
               s1.name AS origin_stop_name, s2.name AS destination_stop_name,
               uf.created_at
        FROM user_favorites uf
        JOIN routes r ON uf.route_id = r.id
        LEFT JOIN stops s1 ON uf.origin_stop_id = s1.id
        LEFT JOIN stops s2 ON uf.destination_stop_id = s2.id
        WHERE uf.user_id = $1
        ORDER BY uf.created_at DESC`,
        userID)
    if err != nil {
        return nil, storageErr("listing favorites", err)
    }
    defer rows.Close()

    favorites := make([]models.Favorite, 0)
    for rows.Next() {
        var (
            fav        models.Favorite
            originID   sql.NullString
            destID     sql.NullString
            originName sql.NullString
            destName   sql.NullString
        )
        if err := rows.Scan(
            &fav.ID, &fav.UserID, &fav.RouteID, &fav.RouteName, &fav.Origin, &fav.Destination,
            &originID, &destID, &originName, &destName, &fav.CreatedAt,
        ); err != nil {
            return nil, storageErr("scanning favorite", err)
        }
        if originID.Valid {
            fav.OriginStopID = &originID.String
        }
        if destID.Valid {
            fav.DestinationStopID = &destID.String
        }
        if originName.Valid {
            fav.OriginStopName = &originName.String
        }
        if destName.Valid {
            fav.DestinationStopName = &destName.String
        }
        favorites = append(favorites, fav)
    }
    return favorites, rows.Err()
}
