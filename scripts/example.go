package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/kass/go-route-analyzer/pkg/analysis"
	"github.com/kass/go-route-analyzer/pkg/geo"
	"github.com/kass/go-route-analyzer/pkg/models"
	"github.com/kass/go-route-analyzer/pkg/parser"
)

// A short loop through Barcelona, as an event organiser might export it
const sampleKML = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>Marxa cicloturista</name>
      <LineString>
        <coordinates>
          2.1686,41.3874,12 2.1734,41.3851,10 2.1800,41.3825,8
          2.1900,41.3900,15 2.1955,41.4036,30 2.1744,41.4036,60
          2.1527,41.4145,120 2.1364,41.4020,90 2.1500,41.3900,40
          2.1686,41.3874,12
        </coordinates>
      </LineString>
    </Placemark>
  </Document>
</kml>`

func main() {
	// Example 1: analyze a KML export
	fmt.Println("=== Route Summary ===")
	data, err := analysis.AnalyzeRoute(sampleKML, "kml")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Points: %d\n", len(data.Route))
	fmt.Printf("Distance: %.1f km\n", data.Distance)
	fmt.Printf("Elevation: %d m\n", data.Elevation)
	fmt.Printf("Estimated time: %s\n", data.EstimatedTime)
	for i, p := range data.HydrationPoints {
		fmt.Printf("  Hydration %d: (%.4f, %.4f)\n", i+1, p.Lat, p.Lon)
	}

	// Example 2: route points within 1km of Sagrada Familia
	fmt.Println("\n=== Route Points near Sagrada Familia ===")
	sagrada := models.Location{Lat: 41.4036, Lon: 2.1744}
	index := geo.NewRouteIndex(data.Route)
	near, err := index.WithinRadius(sagrada, 1.0)
	if err != nil {
		log.Fatal(err)
	}
	for _, i := range near {
		fmt.Printf("  #%d: %.2f km away\n", i, geo.Haversine(sagrada, data.Route[i]))
	}

	// Example 3: add a manual hydration point at Park Guell
	fmt.Println("\n=== Manual Hydration Point ===")
	updated, snap, err := analysis.AddHydrationPoint(data, models.Location{Lat: 41.4145, Lon: 2.1527})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Snapped to #%d, %.3f km away; %d hydration points now\n",
		snap.Index, snap.OffsetKm, len(updated.HydrationPoints))

	// Example 4: rejected uploads
	fmt.Println("\n=== Rejected Files ===")
	if _, err := analysis.AnalyzeFile("activity.fit", []byte{0x0e}); errors.Is(err, parser.ErrUnsupportedFormat) {
		fmt.Println("  ", err)
	}
	if _, err := analysis.AnalyzeFile("one-point.csv", []byte("41.38,2.16\n")); errors.Is(err, parser.ErrInsufficientPoints) {
		fmt.Println("  ", err)
	}
}
