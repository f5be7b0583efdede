package geo

import (
	"fmt"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/samber/lo"

	"github.com/kass/go-route-analyzer/pkg/models"
)

const (
	tolerance   = 1e-9
	minChildren = 25
	maxChildren = 50
	dimensions  = 2

	// candidates fetched from the tree before ranking by great-circle distance
	nearestCandidates = 8
)

// vertex wraps a route vertex for R-Tree indexing
type vertex struct {
	idx  int
	loc  models.Location
	rect *rtreego.Rect
}

func (v *vertex) Bounds() *rtreego.Rect {
	return v.rect
}

// RouteIndex is an immutable R-Tree over the vertices of a single route.
// It is safe for concurrent reads.
type RouteIndex struct {
	tree  *rtreego.Rtree
	route []models.Location
}

// NewRouteIndex bulk-loads the vertices of route into an R-Tree
func NewRouteIndex(route []models.Location) *RouteIndex {
	items := lo.Map(route, func(loc models.Location, i int) rtreego.Spatial {
		p := rtreego.Point{loc.Lat, loc.Lon}
		return &vertex{idx: i, loc: loc, rect: p.ToRect(tolerance)}
	})

	return &RouteIndex{
		tree:  rtreego.NewTree(dimensions, minChildren, maxChildren, items...),
		route: append([]models.Location(nil), route...),
	}
}

// Len returns the number of indexed vertices
func (ri *RouteIndex) Len() int {
	return len(ri.route)
}

// Nearest returns the route vertex closest to loc by great-circle distance.
// Ties resolve to the lowest vertex index. ok is false for an empty index.
func (ri *RouteIndex) Nearest(loc models.Location) (idx int, nearest models.Location, distKm float64, ok bool) {
	if len(ri.route) == 0 {
		return 0, models.Location{}, 0, false
	}

	// The tree ranks in degree space, so its best candidate only bounds the answer
	k := min(nearestCandidates, len(ri.route))
	idx, distKm = -1, math.Inf(1)
	for _, result := range ri.tree.NearestNeighbors(k, rtreego.Point{loc.Lat, loc.Lon}) {
		if v, isVertex := result.(*vertex); isVertex {
			idx, distKm = ri.closer(loc, idx, distKm, v.idx)
		}
	}
	if idx < 0 {
		return 0, models.Location{}, 0, false
	}

	if distKm > 0 {
		within, err := ri.WithinRadius(loc, distKm)
		if err == nil {
			for _, i := range within {
				idx, distKm = ri.closer(loc, idx, distKm, i)
			}
		}
	}
	return idx, ri.route[idx], distKm, true
}

func (ri *RouteIndex) closer(loc models.Location, bestIdx int, bestDist float64, candidate int) (int, float64) {
	d := Haversine(loc, ri.route[candidate])
	if d < bestDist || (d == bestDist && candidate < bestIdx) {
		return candidate, d
	}
	return bestIdx, bestDist
}

// WithinRadius returns the indices of all vertices within radiusKm of center,
// in ascending route order. Circles crossing the antimeridian are searched on
// both sides of it.
func (ri *RouteIndex) WithinRadius(center models.Location, radiusKm float64) ([]int, error) {
	if radiusKm <= 0 {
		return nil, fmt.Errorf("invalid radius %.3f km: must be positive", radiusKm)
	}

	// Convert radius to degrees; longitude is widened for the most poleward
	// latitude the circle can reach so the box always contains it
	latDeg := degrees(radiusKm / earthRadius)
	lonDeg := 360.0
	poleward := math.Min(math.Abs(center.Lat)+latDeg, 90)
	if c := math.Cos(radians(poleward)); c > 1e-6 {
		lonDeg = math.Min(latDeg/c, 360)
	}

	shifts := []float64{0}
	if center.Lon-lonDeg < -180 {
		shifts = append(shifts, 360)
	}
	if center.Lon+lonDeg > 180 {
		shifts = append(shifts, -360)
	}

	var matched []int
	for _, shift := range shifts {
		bounds, err := rtreego.NewRect(
			rtreego.Point{center.Lat - latDeg, center.Lon + shift - lonDeg},
			[]float64{2 * latDeg, 2 * lonDeg},
		)
		if err != nil {
			return nil, fmt.Errorf("invalid radius search: %w", err)
		}

		for _, result := range ri.tree.SearchIntersect(bounds) {
			v, ok := result.(*vertex)
			if !ok {
				continue
			}
			if Haversine(center, v.loc) <= radiusKm {
				matched = append(matched, v.idx)
			}
		}
	}

	indices := lo.Uniq(matched)
	if indices == nil {
		indices = make([]int, 0)
	}
	sort.Ints(indices)

	return indices, nil
}
