package analysis

import (
	"errors"

	"github.com/kass/go-route-analyzer/pkg/geo"
	"github.com/kass/go-route-analyzer/pkg/models"
)

var ErrEmptyRoute = errors.New("route has no points")

// Snap is the outcome of moving a location onto the nearest route vertex
type Snap struct {
	Index    int
	Location models.Location
	OffsetKm float64 // distance from the requested location
}

// SnapToRoute returns the route vertex nearest to loc
func SnapToRoute(route []models.Location, loc models.Location) (Snap, error) {
	idx, nearest, dist, ok := geo.NewRouteIndex(route).Nearest(loc)
	if !ok {
		return Snap{}, ErrEmptyRoute
	}
	return Snap{Index: idx, Location: nearest, OffsetKm: dist}, nil
}

// AddHydrationPoint snaps loc onto data's route and returns a copy of data
// with the snapped vertex appended as a manual hydration point
func AddHydrationPoint(data models.RouteData, loc models.Location) (models.RouteData, Snap, error) {
	snap, err := SnapToRoute(data.Route, loc)
	if err != nil {
		return data, Snap{}, err
	}
	return data.WithHydrationPoint(snap.Location), snap, nil
}
