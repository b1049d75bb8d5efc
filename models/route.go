package models

import (
    "time"
    "github.com/go-playground/validator/v10"
)

// Route categories accepted by the routes table.
const (
    RouteRegular    = "regular"
    RouteExpress    = "express"
    RouteAC         = "ac"
    RouteLuxury     = "luxury"
    RouteSemiLuxury = "semi-luxury"
)

// Coordinate is one [lat, lng] point of a route polyline.
type Coordinate [2]float64

// CoordinateInRange is the "latlng" validation rule: a polyline point
// must hold a latitude in -90..90 and a longitude in -180..180.
func CoordinateInRange(fl validator.FieldLevel) bool {
    coord, ok := fl.Field().Interface().(Coordinate)
    if !ok {
        return false
    }
    return coord[0] >= -90 && coord[0] <= 90 &&
        coord[1] >= -180 && coord[1] <= 180
}

type Route struct {
    ID          string       `json:"id"`
    Name        string       `json:"name"`
    Origin      string       `json:"origin"`
    Destination string       `json:"destination"`
    Fare        float64      `json:"fare"`
    Duration    int          `json:"duration"`
    Frequency   int          `json:"frequency"`
    Type        string       `json:"type"`
    Stops       []RouteStop  `json:"stops"`
    Coordinates []Coordinate `json:"coordinates"`
    CreatedAt   time.Time    `json:"created_at"`
    UpdatedAt   time.Time    `json:"updated_at"`
}

type Stop struct {
    ID        string  `json:"id"`
    Name      string  `json:"name"`
    Latitude  float64 `json:"lat"`
    Longitude float64 `json:"lng"`
}

// RouteStop is a stop hydrated with its position on one route.
type RouteStop struct {
    Stop
    Order int `json:"order"`
}

// NearbyStop is a stop annotated with its distance from a query point.
type NearbyStop struct {
    Stop
    DistanceKm float64 `json:"distance_km"`
}

// RouteInput is the payload accepted by the route upsert endpoint.
// Fare, duration and frequency are pointers so a missing field can be
// told apart from a zero value.
type RouteInput struct {
    ID          string       `json:"id" validate:"required"`
    Name        string       `json:"name" validate:"required"`
    Origin      string       `json:"origin" validate:"required"`
    Destination string       `json:"destination" validate:"required"`
    Fare        *float64     `json:"fare" validate:"required,gte=0"`
    Duration    *int         `json:"duration" validate:"required,gt=0"`
    Frequency   *int         `json:"frequency" validate:"required,gt=0"`
    Type        string       `json:"type" validate:"omitempty,oneof=regular express ac luxury semi-luxury"`
    Stops       []StopInput  `json:"stops" validate:"required,min=1,dive"`
    Coordinates []Coordinate `json:"coordinates" validate:"required,min=1,dive,latlng"`
}

type StopInput struct {
    ID        string  `json:"id" validate:"required"`
    Name      string  `json:"name" validate:"required"`
    Latitude  float64 `json:"lat" validate:"gte=-90,lte=90"`
    Longitude float64 `json:"lng" validate:"gte=-180,lte=180"`
    Order     int     `json:"order" validate:"gte=1"`
}
