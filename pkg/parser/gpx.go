package parser

import (
	"encoding/xml"

	"github.com/kass/go-route-analyzer/pkg/models"
)

// parseGPX reads the lat/lon attributes of every trkpt element.
// Elevation and time children are not read.
func parseGPX(content string) ([]models.Location, error) {
	var points []models.Location

	err := walkElements(content, "trkpt", func(_ *xml.Decoder, se xml.StartElement) error {
		latStr, _ := attr(se, "lat")
		lonStr, _ := attr(se, "lon")

		lat, okLat := parseNumber(latStr)
		lon, okLon := parseNumber(lonStr)
		if okLat && okLon {
			points = append(points, models.Location{Lat: lat, Lon: lon})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return points, nil
}
