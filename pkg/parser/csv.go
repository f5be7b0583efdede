package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kass/go-route-analyzer/pkg/models"
)

const (
	defaultLatColumn = 0
	defaultLonColumn = 1
)

// csvLayout is the column layout detected from the first line
type csvLayout struct {
	latCol    int
	lonCol    int
	hasHeader bool
}

// parseCSV reads comma separated lat/lon rows. A first line whose first
// field starts with a letter is a header; lat/latitude and lon/lng/longitude
// in it select the columns, otherwise columns 0 and 1 are used.
func parseCSV(content string) ([]models.Location, error) {
	lines := strings.Split(content, "\n")
	layout := detectCSVLayout(lines[0])

	start := 0
	if layout.hasHeader {
		start = 1
	}

	var points []models.Location
	for _, line := range lines[start:] {
		fields := strings.Split(strings.TrimRight(line, "\r"), ",")
		if len(fields) <= max(layout.latCol, layout.lonCol) {
			continue
		}

		lat, okLat := parseNumber(fields[layout.latCol])
		lon, okLon := parseNumber(fields[layout.lonCol])
		if okLat && okLon {
			points = append(points, models.Location{Lat: lat, Lon: lon})
		}
	}

	return points, nil
}

func detectCSVLayout(firstLine string) csvLayout {
	layout := csvLayout{latCol: -1, lonCol: -1}

	headers := strings.Split(strings.TrimRight(firstLine, "\r"), ",")
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
	}

	first, _ := utf8.DecodeRuneInString(headers[0])
	layout.hasHeader = unicode.IsLetter(first)

	if layout.hasHeader {
		for i, h := range headers {
			switch h {
			case "lat", "latitude":
				if layout.latCol < 0 {
					layout.latCol = i
				}
			case "lon", "lng", "longitude":
				if layout.lonCol < 0 {
					layout.lonCol = i
				}
			}
		}
	}

	if layout.latCol < 0 {
		layout.latCol = defaultLatColumn
	}
	if layout.lonCol < 0 {
		layout.lonCol = defaultLonColumn
	}
	return layout
}
