package utils

import (
    "math"
    "testing"
)

func TestParseDistance(t *testing.T) {
    tests := []struct {
        input string
        want  float64
    }{
        {"2", 2},
        {"2.5", 2.5},
        {"2.5km", 2.5},
        {"12 KM", 12},
        {" 3km ", 3},
        {"0", 0},
        {"garbage", 0},
        {"", 0},
        {"km", 0},
    }

    for _, tt := range tests {
        if got := ParseDistance(tt.input); got != tt.want {
            t.Errorf("ParseDistance(%q) = %v, want %v", tt.input, got, tt.want)
        }
    }
}

func TestCalculateDistance(t *testing.T) {
    // Colombo Fort to Kandy is roughly 94 km as the crow flies.
    got := CalculateDistance(6.9373, 79.8471, 7.2898, 80.6311)
    if got < 90 || got > 100 {
        t.Errorf("Colombo Fort to Kandy = %.2f km, want roughly 94", got)
    }

    if d := CalculateDistance(6.9373, 79.8471, 6.9373, 79.8471); d != 0 {
        t.Errorf("same point distance = %v, want 0", d)
    }

    // Symmetric in its arguments.
    forward := CalculateDistance(6.9340, 79.8502, 6.8420, 80.0033)
    reverse := CalculateDistance(6.8420, 80.0033, 6.9340, 79.8502)
    if math.Abs(forward-reverse) > 1e-9 {
        t.Errorf("distance not symmetric: %v vs %v", forward, reverse)
    }
}
