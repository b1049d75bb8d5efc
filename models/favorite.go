package models

import "time"

// Favorite is a user's saved route joined with route and stop names.
type Favorite struct {
    ID                  int64     `json:"id"`
    UserID              string    `json:"user_id"`
    RouteID             string    `json:"route_id"`
    RouteName           string    `json:"route_name"`
    Origin              string    `json:"origin"`
    Destination         string    `json:"destination"`
    OriginStopID        *string   `json:"origin_stop_id"`
    DestinationStopID   *string   `json:"destination_stop_id"`
    OriginStopName      *string   `json:"origin_stop_name"`
    DestinationStopName *string   `json:"destination_stop_name"`
    CreatedAt           time.Time `json:"created_at"`
}

// FavoriteInput is the payload accepted by the add-favorite endpoint.
type FavoriteInput struct {
    RouteID           string  `json:"route_id" validate:"required"`
    OriginStopID      *string `json:"origin_stop_id"`
    DestinationStopID *string `json:"destination_stop_id"`
}
