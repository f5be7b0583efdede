package analysis

import (
	"github.com/kass/go-route-analyzer/pkg/geo"
	"github.com/kass/go-route-analyzer/pkg/models"
)

const (
	// MinHydrationRoutePoints is the shortest route that gets hydration points
	MinHydrationRoutePoints = 4
)

// hydrationFractions are the fractions of total distance that get a stop, in order
var hydrationFractions = [...]float64{0.25, 0.50}

// HydrationPoints picks up to two existing route vertices as resupply stops.
//
// The route is walked segment by segment; when the running distance first
// reaches a threshold fraction of the total, the vertex at the start of that
// segment is taken. Each threshold fires at most once and results keep
// threshold order. Coordinates are copied from route, never interpolated.
func HydrationPoints(route []models.Location) []models.Location {
	points := make([]models.Location, 0, len(hydrationFractions))
	if len(route) < MinHydrationRoutePoints {
		return points
	}

	cum := geo.CumulativeDistances(route)
	total := cum[len(cum)-1]
	if total <= 0 {
		return points
	}

	next := 0
	for i := 0; i < len(route)-1 && next < len(hydrationFractions); i++ {
		// a long segment can cross several thresholds at once
		for next < len(hydrationFractions) && cum[i+1] >= hydrationFractions[next]*total {
			points = append(points, route[i])
			next++
		}
	}

	return points
}
