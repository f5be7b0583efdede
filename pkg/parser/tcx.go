package parser

import (
	"encoding/xml"

	"github.com/kass/go-route-analyzer/pkg/models"
)

type tcxTrackpoint struct {
	Position *tcxPosition `xml:"Position"`
}

type tcxPosition struct {
	Lat string `xml:"LatitudeDegrees"`
	Lon string `xml:"LongitudeDegrees"`
}

// parseTCX reads the Position of every Trackpoint element. Trackpoints
// without a Position (pauses, sensor-only samples) are skipped.
func parseTCX(content string) ([]models.Location, error) {
	var points []models.Location

	err := walkElements(content, "Trackpoint", func(d *xml.Decoder, se xml.StartElement) error {
		var tp tcxTrackpoint
		if err := d.DecodeElement(&tp, &se); err != nil {
			return err
		}
		if tp.Position == nil {
			return nil
		}

		lat, okLat := parseNumber(tp.Position.Lat)
		lon, okLon := parseNumber(tp.Position.Lon)
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
