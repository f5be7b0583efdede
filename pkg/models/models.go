package models

// DefaultZoom is the initial map zoom level for an analyzed route
const DefaultZoom = 13

// Location represents a geographic location with latitude and longitude
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RouteData is the analysis result handed to the map renderer
type RouteData struct {
	Center          Location   `json:"center"`
	Zoom            int        `json:"zoom"`
	Route           []Location `json:"route"`
	HydrationPoints []Location `json:"hydrationPoints"`
	Distance        float64    `json:"distance"`      // km, one decimal
	Elevation       int        `json:"elevation"`     // m
	EstimatedTime   string     `json:"estimatedTime"` // H:MM
}

// WithHydrationPoint returns a copy of r with loc appended to its hydration points.
// The receiver's slices are not shared with the copy.
func (r RouteData) WithHydrationPoint(loc Location) RouteData {
	out := r
	out.Route = append([]Location(nil), r.Route...)
	out.HydrationPoints = make([]Location, 0, len(r.HydrationPoints)+1)
	out.HydrationPoints = append(out.HydrationPoints, r.HydrationPoints...)
	out.HydrationPoints = append(out.HydrationPoints, loc)
	return out
}
