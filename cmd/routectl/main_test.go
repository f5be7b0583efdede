package main

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kass/go-route-analyzer/pkg/config"
	"github.com/kass/go-route-analyzer/pkg/models"
	"github.com/kass/go-route-analyzer/pkg/parser"
)

func writeTempRoute(t *testing.T, name string, route []models.Location) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(renderGPX(route)), 0o644))
	return path
}

func TestGenerateRouteAndRenderGPX(t *testing.T) {
	route := generateRoute(rand.New(rand.NewSource(1)), 500)
	require.Len(t, route, 500)

	points, err := parser.Parse(renderGPX(route), "gpx")
	require.NoError(t, err)
	require.Len(t, points, 500)
	assert.InDelta(t, route[499].Lat, points[499].Lat, 1e-6)
	assert.InDelta(t, route[499].Lon, points[499].Lon, 1e-6)
}

func TestAnalyzePathAndWriteJSON(t *testing.T) {
	config.OutputFormat = config.OutputJSON
	path := writeTempRoute(t, "ride.gpx", generateRoute(rand.New(rand.NewSource(2)), 200))

	data, err := analyzePath(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeRouteData(&buf, "ride.gpx", data))

	var decoded models.RouteData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, data.Distance, decoded.Distance)
	assert.Equal(t, data.EstimatedTime, decoded.EstimatedTime)
	assert.Len(t, decoded.HydrationPoints, 2)
}

func TestAnalyzePathMissingFile(t *testing.T) {
	_, err := analyzePath(filepath.Join(t.TempDir(), "missing.gpx"))
	assert.Error(t, err)
}

func TestWriteBatchTable(t *testing.T) {
	good := writeTempRoute(t, "good.gpx", generateRoute(rand.New(rand.NewSource(3)), 50))
	bad := filepath.Join(t.TempDir(), "route.fit")
	require.NoError(t, os.WriteFile(bad, []byte("binary"), 0o644))

	var results []batchResult
	for _, f := range []string{good, bad} {
		data, err := analyzePath(f)
		results = append(results, batchResult{file: f, data: data, err: err})
	}

	var buf bytes.Buffer
	require.NoError(t, writeBatchTable(&buf, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "good.gpx")
	assert.Contains(t, lines[2], "route.fit")
	assert.Contains(t, lines[2], "unsupported format")
}

func TestBatchModelAdvancesThroughFiles(t *testing.T) {
	m := newBatchModel([]string{"a.gpx", "b.gpx"})
	assert.False(t, m.done())

	next, cmd := m.Update(fileDoneMsg{file: "a.gpx"})
	m = next.(batchModel)
	assert.NotNil(t, cmd)
	assert.Len(t, m.results, 1)
	assert.False(t, m.done())
	assert.Contains(t, m.View(), "b.gpx")

	next, _ = m.Update(fileDoneMsg{file: "b.gpx"})
	m = next.(batchModel)
	assert.True(t, m.done())
	assert.Contains(t, m.View(), "Batch Complete")
}

func TestTimeStage(t *testing.T) {
	calls := 0
	res := timeStage("noop", 5, func() { calls++ })
	assert.Equal(t, 5, calls)
	assert.Equal(t, 5, res.Iterations)
	assert.LessOrEqual(t, res.MinDuration, res.MaxDuration)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "ROUTECTL_LOG_LEVEL", envKey("log-level"))
	assert.Equal(t, "ROUTECTL_OUTPUT", envKey("output"))
	assert.Equal(t, "ROUTECTL_NO_TUI", envKey("no-tui"))
}

func TestBindFlagsFillsUnchangedFlags(t *testing.T) {
	var level, format string
	var lat float64
	root := &cobra.Command{Use: "root"}
	root.PersistentFlags().StringVar(&level, "log-level", "info", "")
	root.PersistentFlags().StringVar(&format, "log-format", "text", "")
	sub := &cobra.Command{Use: "sub"}
	sub.Flags().Float64Var(&lat, "lat", 0, "")
	root.AddCommand(sub)

	require.NoError(t, root.PersistentFlags().Set("log-format", "json"))
	t.Setenv("ROUTECTL_LAT", "41.5")

	v := viper.New()
	v.Set("log-level", "debug")
	v.Set("log-format", "text")

	require.NoError(t, bindFlags(root, v))
	assert.Equal(t, "debug", level)
	assert.Equal(t, "json", format, "command line wins over config")
	assert.Equal(t, 41.5, lat)
}

func TestBindFlagsReportsBadValues(t *testing.T) {
	var points int
	root := &cobra.Command{Use: "root"}
	root.Flags().IntVar(&points, "points", 10, "")

	v := viper.New()
	v.Set("points", "many")

	err := bindFlags(root, v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--points")
	assert.Equal(t, 10, points)
}

func TestRenderRouteSummary(t *testing.T) {
	data := models.RouteData{
		Center:        models.Location{Lat: 41.38740, Lon: 2.16860},
		Route:         make([]models.Location, 12),
		Distance:      42.3,
		Elevation:     517,
		EstimatedTime: "1:41",
	}

	out := renderRouteSummary("ride.gpx", data)
	for _, want := range []string{"ride.gpx", "42.3 km", "517 m", "1:41", "12", "41.38740, 2.16860", "No hydration points"} {
		assert.Contains(t, out, want)
	}

	data.HydrationPoints = []models.Location{{Lat: 41.4, Lon: 2.2}, {Lat: 41.5, Lon: 2.3}}
	out = renderRouteSummary("ride.gpx", data)
	assert.Contains(t, out, "Hydration points")
	assert.Contains(t, out, "1. 41.40000, 2.20000")
	assert.Contains(t, out, "2. 41.50000, 2.30000")
	assert.NotContains(t, out, "No hydration points")
}

func TestRenderBatchSummary(t *testing.T) {
	results := []batchResult{
		{file: "/tmp/a.gpx", data: models.RouteData{Distance: 10.5, Elevation: 100, EstimatedTime: "0:25"}},
		{file: "/tmp/b.fit", err: parser.ErrUnsupportedFormat},
		{file: "/tmp/c.gpx", data: models.RouteData{Distance: 4.5, Elevation: 20, EstimatedTime: "0:10"}},
	}

	out := renderBatchSummary(results)
	assert.Contains(t, out, "2 of 3")
	assert.Contains(t, out, "15.0 km")
	assert.Contains(t, out, "✓ a.gpx: 10.5 km, 100 m, 0:25")
	assert.Contains(t, out, "✗ b.fit: unsupported format")
}
