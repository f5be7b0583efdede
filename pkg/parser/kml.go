package parser

import (
	"encoding/xml"
	"strings"

	"github.com/kass/go-route-analyzer/pkg/models"
)

type kmlCoordinates struct {
	Text string `xml:",chardata"`
}

// parseKML reads every coordinates element as whitespace separated
// "lon,lat[,alt]" tuples. Note KML puts longitude first.
func parseKML(content string) ([]models.Location, error) {
	var points []models.Location

	err := walkElements(content, "coordinates", func(d *xml.Decoder, se xml.StartElement) error {
		var c kmlCoordinates
		if err := d.DecodeElement(&c, &se); err != nil {
			return err
		}

		for _, tuple := range strings.Fields(c.Text) {
			if loc, ok := parseKMLTuple(tuple); ok {
				points = append(points, loc)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return points, nil
}

func parseKMLTuple(tuple string) (models.Location, bool) {
	fields := strings.Split(tuple, ",")
	if len(fields) < 2 {
		return models.Location{}, false
	}

	lon, okLon := parseNumber(fields[0])
	lat, okLat := parseNumber(fields[1])
	if !okLon || !okLat {
		return models.Location{}, false
	}
	// altitude, if any, is dropped
	return models.Location{Lat: lat, Lon: lon}, true
}
