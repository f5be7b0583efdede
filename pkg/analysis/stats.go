package analysis

import (
	"fmt"
	"math"

	"github.com/kass/go-route-analyzer/pkg/geo"
	"github.com/kass/go-route-analyzer/pkg/models"
)

const (
	// AverageSpeedKmh is the assumed constant riding speed
	AverageSpeedKmh = 20.0
	// ClimbPerKm is the elevation gain, in meters, credited per kilometer.
	// It is a fixed proxy; altitude data in the source file is never read.
	ClimbPerKm = 7.0
)

// Stats is the summary shown to riders for a route
type Stats struct {
	DistanceKm    float64 // rounded to one decimal
	ElevationM    int
	EstimatedTime string // H:MM
}

// Estimate derives distance, elevation and riding time from route.
// Elevation and time are computed from the unrounded distance.
func Estimate(route []models.Location) Stats {
	total := geo.PathLength(route)

	return Stats{
		DistanceKm:    math.Round(total*10) / 10,
		ElevationM:    int(math.Round(total * ClimbPerKm)),
		EstimatedTime: EstimatedTime(total),
	}
}

// EstimatedTime formats the riding time for distanceKm at AverageSpeedKmh as H:MM.
// Minutes are rounded and never carried into the hour, so "1:60" is possible.
func EstimatedTime(distanceKm float64) string {
	exact := distanceKm / AverageSpeedKmh
	hours := math.Floor(exact)
	minutes := math.Round((exact - hours) * 60)
	return fmt.Sprintf("%d:%02d", int(hours), int(minutes))
}
