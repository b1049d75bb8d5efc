// Package data bundles the Sri Lanka sample routes used to seed a fresh
// installation.
package data

import "github.com/Sithila-Sihan-Somaratne/sri-lanka-bus-app/models"

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// coordsFromStops builds the polyline from the stop positions. The real
// polylines have more points than named stops; until surveyed geometry is
// loaded, the stop sequence is the best available approximation.
func coordsFromStops(stops []models.StopInput) []models.Coordinate {
    coords := make([]models.Coordinate, len(stops))
    for i, stop := range stops {
        coords[i] = models.Coordinate{stop.Latitude, stop.Longitude}
    }
    return coords
}

func route(id, name, origin, destination string, fare float64, duration, frequency int, routeType string, stops []models.StopInput) models.RouteInput {
    return models.RouteInput{
        ID:          id,
        Name:        name,
        Origin:      origin,
        Destination: destination,
        Fare:        floatPtr(fare),
        Duration:    intPtr(duration),
        Frequency:   intPtr(frequency),
        Type:        routeType,
        Stops:       stops,
        Coordinates: coordsFromStops(stops),
    }
}

// SampleRoutes returns the bundled Sri Lanka routes.
func SampleRoutes() []models.RouteInput {
    return []models.RouteInput{
        route("01", "Colombo Fort - Kandy", "Colombo Fort", "Kandy", 740, 250, 10, models.RouteLuxury, []models.StopInput{
            {ID: "f1", Name: "Colombo Fort", Latitude: 6.9373, Longitude: 79.8471, Order: 1},
            {ID: "pl1", Name: "Peliyagoda", Latitude: 6.9355, Longitude: 79.8848, Order: 2},
            {ID: "ne1", Name: "Neludeniya", Latitude: 7.2349, Longitude: 80.2632, Order: 3},
            {ID: "ke1", Name: "Kegalle", Latitude: 7.2533, Longitude: 80.3448, Order: 4},
            {ID: "ka1", Name: "Kandy", Latitude: 7.2898, Longitude: 80.6311, Order: 5},
        }),
        route("87", "Colombo Fort - Jaffna", "Colombo Fort", "Jaffna", 1719, 375, 10, models.RouteSemiLuxury, []models.StopInput{
            {ID: "f1", Name: "Colombo Fort", Latitude: 6.9373, Longitude: 79.8471, Order: 1},
            {ID: "ch1", Name: "Chilaw", Latitude: 7.5769, Longitude: 79.7961, Order: 2},
            {ID: "pu1", Name: "Puttalam", Latitude: 8.0281, Longitude: 79.8333, Order: 3},
            {ID: "an1", Name: "Anuradhapura", Latitude: 8.3231, Longitude: 80.4028, Order: 4},
            {ID: "ja1", Name: "Jaffna", Latitude: 9.6668, Longitude: 80.0120, Order: 5},
        }),
        route("138", "Colombo Pettah - Homagama", "Colombo Pettah", "Homagama", 2200, 50, 10, models.RouteLuxury, []models.StopInput{
            {ID: "p1", Name: "Colombo Pettah", Latitude: 6.9340, Longitude: 79.8502, Order: 1},
            {ID: "f1", Name: "Colombo Fort", Latitude: 6.9364, Longitude: 79.8465, Order: 2},
            {ID: "lh1", Name: "Lake House", Latitude: 6.9323, Longitude: 79.8473, Order: 3},
            {ID: "si1", Name: "Slave Island", Latitude: 6.9257, Longitude: 79.8503, Order: 4},
            {ID: "ib1", Name: "Ibbanwala Junction", Latitude: 6.9181, Longitude: 79.8625, Order: 5},
            {ID: "th1", Name: "Colombo Town Hall", Latitude: 6.9168, Longitude: 79.8631, Order: 6},
            {ID: "tm1", Name: "Thummulla", Latitude: 6.8957, Longitude: 79.8605, Order: 7},
            {ID: "tj1", Name: "Thimbirigasyaya Junction", Latitude: 6.9211, Longitude: 79.8698, Order: 8},
            {ID: "hc1", Name: "Havelock City", Latitude: 6.8829, Longitude: 79.8688, Order: 9},
            {ID: "kp1", Name: "Kirulapone", Latitude: 6.8786, Longitude: 79.8755, Order: 10},
            {ID: "ng1", Name: "Nugegoda", Latitude: 6.8717, Longitude: 79.8898, Order: 11},
            {ID: "dl1", Name: "Delkanda", Latitude: 6.8600, Longitude: 79.9000, Order: 12},
            {ID: "nv1", Name: "Navinna", Latitude: 6.8525, Longitude: 79.9169, Order: 13},
            {ID: "mh1", Name: "Maharagama", Latitude: 6.8482, Longitude: 79.9254, Order: 14},
            {ID: "pp1", Name: "Pannipitiya", Latitude: 6.8454, Longitude: 79.9434, Order: 15},
            {ID: "kt1", Name: "Kottawa", Latitude: 6.8408, Longitude: 79.9639, Order: 16},
            {ID: "hm1", Name: "Homagama", Latitude: 6.8420, Longitude: 80.0033, Order: 17},
        }),
        route("193", "Colombo Town Hall - Kadawatha", "Colombo Town Hall", "Kadawatha", 2300, 35, 10, models.RouteRegular, []models.StopInput{
            {ID: "th1", Name: "Colombo Town Hall", Latitude: 6.9168, Longitude: 79.8631, Order: 1},
            {ID: "th2", Name: "Borella", Latitude: 6.9150, Longitude: 79.8780, Order: 2},
            {ID: "th3", Name: "Rajagiriya", Latitude: 6.9101, Longitude: 79.8944, Order: 3},
            {ID: "th4", Name: "Battaramulla", Latitude: 6.9020, Longitude: 79.9174, Order: 4},
            {ID: "th5", Name: "Kaduwela", Latitude: 6.9363, Longitude: 79.9833, Order: 5},
            {ID: "th6", Name: "Kadawatha", Latitude: 7.0052, Longitude: 79.9546, Order: 6},
        }),
        route("EX1-1", "Makumbara - Matara (Express)", "Makumbara", "Matara", 970, 105, 10, models.RouteExpress, []models.StopInput{
            {ID: "ex1", Name: "Makumbara", Latitude: 6.8730, Longitude: 79.9390, Order: 1},
            {ID: "ex2", Name: "Kalutara", Latitude: 6.5844, Longitude: 79.9604, Order: 2},
            {ID: "ex3", Name: "Aluthgama", Latitude: 6.4320, Longitude: 79.9984, Order: 3},
            {ID: "ex4", Name: "Galle", Latitude: 6.0329, Longitude: 80.2158, Order: 4},
            {ID: "ex5", Name: "Matara", Latitude: 5.9431, Longitude: 80.5490, Order: 5},
        }),
    }
}
