package main

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kass/go-route-analyzer/pkg/analysis"
	"github.com/kass/go-route-analyzer/pkg/geo"
	"github.com/kass/go-route-analyzer/pkg/log"
	"github.com/kass/go-route-analyzer/pkg/models"
	"github.com/kass/go-route-analyzer/pkg/parser"
)

type BenchmarkResult struct {
	Stage         string
	Iterations    int
	TotalDuration time.Duration
	AvgDuration   time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
}

func newBenchCmd() *cobra.Command {
	var (
		numPoints  int
		iterations int
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time each pipeline stage on a synthetic route",
		RunE: func(cmd *cobra.Command, args []string) error {
			if numPoints < parser.MinPoints || iterations < 1 {
				return fmt.Errorf("need at least %d points and 1 iteration", parser.MinPoints)
			}

			r := rand.New(rand.NewSource(seed))
			route := generateRoute(r, numPoints)
			content := renderGPX(route)
			log.Info("benchmark route generated",
				log.Int("points", numPoints),
				log.Int("gpxBytes", len(content)))

			results := runBenchmarks(r, route, content, iterations)
			printResults(cmd.OutOrStdout(), numPoints, results)
			return nil
		},
	}

	cmd.Flags().IntVarP(&numPoints, "points", "p", 10000, "number of route points to generate")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 100, "iterations per stage")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	return cmd
}

// generateRoute walks randomly from Barcelona in ~20-60 m steps
func generateRoute(r *rand.Rand, n int) []models.Location {
	route := make([]models.Location, n)
	route[0] = models.Location{Lat: 41.3874, Lon: 2.1686}
	heading := r.Float64() * 2 * math.Pi
	for i := 1; i < n; i++ {
		heading += (r.Float64() - 0.5) * 0.6
		step := 0.0002 + r.Float64()*0.0004
		route[i] = models.Location{
			Lat: route[i-1].Lat + step*math.Cos(heading),
			Lon: route[i-1].Lon + step*math.Sin(heading),
		}
	}
	return route
}

func renderGPX(route []models.Location) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<gpx version="1.1" creator="routectl"><trk><trkseg>` + "\n")
	for _, p := range route {
		fmt.Fprintf(&b, `<trkpt lat="%.6f" lon="%.6f"></trkpt>`+"\n", p.Lat, p.Lon)
	}
	b.WriteString("</trkseg></trk></gpx>\n")
	return b.String()
}

func timeStage(stage string, iterations int, fn func()) BenchmarkResult {
	result := BenchmarkResult{Stage: stage, Iterations: iterations, MinDuration: time.Hour}
	for i := 0; i < iterations; i++ {
		start := time.Now()
		fn()
		d := time.Since(start)

		result.TotalDuration += d
		result.MinDuration = min(result.MinDuration, d)
		result.MaxDuration = max(result.MaxDuration, d)
	}
	result.AvgDuration = result.TotalDuration / time.Duration(iterations)
	return result
}

func runBenchmarks(r *rand.Rand, route []models.Location, content string, iterations int) []BenchmarkResult {
	index := geo.NewRouteIndex(route)
	queries := make([]models.Location, iterations)
	for i := range queries {
		p := route[r.Intn(len(route))]
		queries[i] = models.Location{Lat: p.Lat + (r.Float64()-0.5)*0.002, Lon: p.Lon + (r.Float64()-0.5)*0.002}
	}

	var q int
	return []BenchmarkResult{
		timeStage("parse gpx", iterations, func() { _, _ = parser.Parse(content, "gpx") }),
		timeStage("statistics", iterations, func() { _ = analysis.Estimate(route) }),
		timeStage("hydration", iterations, func() { _ = analysis.HydrationPoints(route) }),
		timeStage("full pipeline", iterations, func() { _, _ = analysis.AnalyzeRoute(content, "gpx") }),
		timeStage("index build", iterations, func() { _ = geo.NewRouteIndex(route) }),
		timeStage("snap", iterations, func() {
			_, _, _, _ = index.Nearest(queries[q%len(queries)])
			q++
		}),
	}
}

func printResults(w io.Writer, numPoints int, results []BenchmarkResult) {
	fmt.Fprintln(w, "\n=== Benchmark Results ===")
	fmt.Fprintf(w, "Route Points: %d\n", numPoints)
	fmt.Fprintf(w, "CPU Cores: %d\n", runtime.NumCPU())
	for _, res := range results {
		fmt.Fprintf(w, "\n%s\n", headerStyle.Render(res.Stage))
		fmt.Fprintf(w, "  Iterations: %d\n", res.Iterations)
		fmt.Fprintf(w, "  Total Duration: %v\n", res.TotalDuration)
		fmt.Fprintf(w, "  Average Duration: %v\n", res.AvgDuration)
		fmt.Fprintf(w, "  Min Duration: %v\n", res.MinDuration)
		fmt.Fprintf(w, "  Max Duration: %v\n", res.MaxDuration)
	}
}
