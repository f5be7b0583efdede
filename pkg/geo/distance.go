// Package geo provides the great-circle distance primitives used by route
// analysis and an R-Tree backed index over route vertices.
package geo

import (
	"math"

	"github.com/kass/go-route-analyzer/pkg/models"
)

const earthRadius = 6371.0 // km

// Haversine returns the great-circle distance between a and b in kilometers
func Haversine(a, b models.Location) float64 {
	phiA, phiB := radians(a.Lat), radians(b.Lat)
	halfDPhi := (phiB - phiA) / 2
	halfDLambda := radians(b.Lon-a.Lon) / 2

	h := sq(math.Sin(halfDPhi)) + math.Cos(phiA)*math.Cos(phiB)*sq(math.Sin(halfDLambda))
	h = math.Min(h, 1)

	return 2 * earthRadius * math.Asin(math.Sqrt(h))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func sq(x float64) float64 { return x * x }

// PathLength sums the segment distances of route in traversal order.
// Zero-length segments and GPS jumps are counted as-is.
func PathLength(route []models.Location) float64 {
	total := 0.0
	for i := 0; i < len(route)-1; i++ {
		total += Haversine(route[i], route[i+1])
	}
	return total
}

// CumulativeDistances returns the running distance at each vertex of route.
// The first entry is always 0 and the last equals PathLength(route).
func CumulativeDistances(route []models.Location) []float64 {
	out := make([]float64, len(route))
	for i := 1; i < len(route); i++ {
		out[i] = out[i-1] + Haversine(route[i-1], route[i])
	}
	return out
}
