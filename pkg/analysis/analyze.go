// Package analysis runs the route pipeline: parse a track file, summarise it
// and place hydration stops. Every call is independent and keeps no state.
package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/kass/go-route-analyzer/pkg/models"
	"github.com/kass/go-route-analyzer/pkg/parser"
)

const utf8BOM = "\ufeff"

// AnalyzeRoute parses content as a track of type ext and returns its RouteData.
// Parser errors (unsupported format, insufficient points) are returned as-is.
func AnalyzeRoute(content, ext string) (models.RouteData, error) {
	route, err := parser.Parse(content, ext)
	if err != nil {
		return models.RouteData{}, err
	}

	stats := Estimate(route)

	return models.RouteData{
		Center:          route[0],
		Zoom:            models.DefaultZoom,
		Route:           route,
		HydrationPoints: HydrationPoints(route),
		Distance:        stats.DistanceKm,
		Elevation:       stats.ElevationM,
		EstimatedTime:   stats.EstimatedTime,
	}, nil
}

// AnalyzeFile is AnalyzeRoute for an uploaded file: the extension comes from
// filename and content is decoded as UTF-8 text.
func AnalyzeFile(filename string, content []byte) (models.RouteData, error) {
	return AnalyzeRoute(decodeText(content), parser.ExtensionOf(filename))
}

// decodeText drops a leading byte order mark and replaces invalid UTF-8
func decodeText(content []byte) string {
	text := strings.TrimPrefix(string(content), utf8BOM)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}
	return text
}
