package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kass/go-route-analyzer/pkg/geo"
	"github.com/kass/go-route-analyzer/pkg/models"
)

func uniformRoute(n int) []models.Location {
	route := make([]models.Location, n)
	for i := range route {
		route[i] = models.Location{Lat: 41.0 + float64(i)*0.001, Lon: 2.0}
	}
	return route
}

func TestHydrationPointsUniformRoute(t *testing.T) {
	route := uniformRoute(100)

	points := HydrationPoints(route)
	require.Len(t, points, 2)
	assert.Equal(t, route[24], points[0])
	assert.Equal(t, route[49], points[1])
}

func TestHydrationPointsBelowMinimumLength(t *testing.T) {
	for n := 0; n < MinHydrationRoutePoints; n++ {
		points := HydrationPoints(uniformRoute(n))
		assert.NotNil(t, points)
		assert.Empty(t, points)
	}

	// geometry does not matter for three points
	points := HydrationPoints([]models.Location{{Lat: 0, Lon: 0}, {Lat: 10, Lon: 10}, {Lat: 20, Lon: 20}})
	assert.Empty(t, points)
}

func TestHydrationPointsZeroLengthRoute(t *testing.T) {
	p := models.Location{Lat: 41.3874, Lon: 2.1686}
	points := HydrationPoints([]models.Location{p, p, p, p, p})
	assert.Empty(t, points)
}

func TestHydrationPointsSingleSegmentCrossesBothThresholds(t *testing.T) {
	route := []models.Location{
		{Lat: 0, Lon: 0},
		{Lat: 1, Lon: 0}, // ~111 km
		{Lat: 1.01, Lon: 0},
		{Lat: 1.02, Lon: 0},
	}

	points := HydrationPoints(route)
	assert.Equal(t, []models.Location{route[0], route[0]}, points)
}

func TestHydrationPointsAreRouteVertices(t *testing.T) {
	route := []models.Location{
		{Lat: 41.38, Lon: 2.16},
		{Lat: 41.40, Lon: 2.18},
		{Lat: 41.45, Lon: 2.20},
		{Lat: 41.47, Lon: 2.25},
		{Lat: 41.50, Lon: 2.26},
		{Lat: 41.52, Lon: 2.30},
	}

	points := HydrationPoints(route)
	require.Len(t, points, 2)
	for _, p := range points {
		assert.Contains(t, route, p)
	}
}

func TestHydrationPointsFollowCumulativeDistance(t *testing.T) {
	// uneven spacing: short steps first, then long ones
	route := []models.Location{
		{Lat: 41.000, Lon: 2.0},
		{Lat: 41.001, Lon: 2.0},
		{Lat: 41.002, Lon: 2.0},
		{Lat: 41.010, Lon: 2.0},
		{Lat: 41.030, Lon: 2.0},
		{Lat: 41.060, Lon: 2.0},
		{Lat: 41.100, Lon: 2.0},
	}
	cum := geo.CumulativeDistances(route)
	total := cum[len(cum)-1]

	var want []models.Location
	for _, fraction := range []float64{0.25, 0.50} {
		for i := 0; i < len(route)-1; i++ {
			if cum[i+1] >= fraction*total {
				want = append(want, route[i])
				break
			}
		}
	}

	points := HydrationPoints(route)
	assert.Equal(t, want, points)
	// 25% of 11.1 km falls inside the 41.010 -> 41.030 segment, 50% in the next
	assert.Equal(t, []models.Location{route[3], route[4]}, points)
}
