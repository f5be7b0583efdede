package analysis

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kass/go-route-analyzer/pkg/models"
	"github.com/kass/go-route-analyzer/pkg/parser"
)

func gpxOf(route []models.Location) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><gpx><trk><trkseg>`)
	for _, p := range route {
		fmt.Fprintf(&b, `<trkpt lat="%v" lon="%v"/>`, p.Lat, p.Lon)
	}
	b.WriteString(`</trkseg></trk></gpx>`)
	return b.String()
}

func TestAnalyzeRoute(t *testing.T) {
	route := uniformRoute(100)

	data, err := AnalyzeRoute(gpxOf(route), "gpx")
	require.NoError(t, err)

	stats := Estimate(route)
	expected := models.RouteData{
		Center:          route[0],
		Zoom:            13,
		Route:           route,
		HydrationPoints: []models.Location{route[24], route[49]},
		Distance:        stats.DistanceKm,
		Elevation:       stats.ElevationM,
		EstimatedTime:   stats.EstimatedTime,
	}
	if diff := cmp.Diff(expected, data); diff != "" {
		t.Errorf("AnalyzeRoute() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 11.0, data.Distance) // 99 segments of ~0.1112 km
	assert.Equal(t, 77, data.Elevation)
	assert.Equal(t, "0:33", data.EstimatedTime)
}

func TestAnalyzeRouteTwoPoints(t *testing.T) {
	data, err := AnalyzeRoute("lat,lon\n0,0\n1,0\n", "csv")
	require.NoError(t, err)

	assert.Equal(t, models.Location{Lat: 0, Lon: 0}, data.Center)
	assert.Len(t, data.Route, 2)
	assert.Empty(t, data.HydrationPoints)
	assert.InDelta(t, 111.2, data.Distance, 0.05)
}

func TestAnalyzeRouteErrors(t *testing.T) {
	_, err := AnalyzeRoute("anything", "fit")
	assert.ErrorIs(t, err, parser.ErrUnsupportedFormat)

	_, err = AnalyzeRoute(`<gpx><trk><trkseg><trkpt lat="1" lon="1"/></trkseg></trk></gpx>`, "gpx")
	assert.ErrorIs(t, err, parser.ErrInsufficientPoints)
}

func TestAnalyzeFile(t *testing.T) {
	content := []byte("\ufeffLatitude,Longitude\r\n41.0,2.0\r\n41.1,2.0\r\n41.2,2.0\r\n41.3,2.0\r\n")

	data, err := AnalyzeFile("Sortida Montseny.CSV", content)
	require.NoError(t, err)
	assert.Len(t, data.Route, 4)
	assert.Len(t, data.HydrationPoints, 2)
	assert.Equal(t, models.DefaultZoom, data.Zoom)
}

func TestAnalyzeFileUnsupported(t *testing.T) {
	_, err := AnalyzeFile("route.fit", []byte{0x0e, 0x10})
	require.Error(t, err)

	var ufe *parser.UnsupportedFormatError
	require.True(t, errors.As(err, &ufe))
	assert.Equal(t, "fit", ufe.Extension)
}

func TestAnalyzeRouteIsIndependentPerCall(t *testing.T) {
	first, err := AnalyzeRoute("0,0\n0,1\n", "csv")
	require.NoError(t, err)
	second, err := AnalyzeRoute("10,10\n10,11\n10,12\n", "csv")
	require.NoError(t, err)

	assert.Len(t, first.Route, 2)
	assert.Len(t, second.Route, 3)
	assert.Equal(t, models.Location{Lat: 0, Lon: 0}, first.Center)
}
