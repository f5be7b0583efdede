package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kass/go-route-analyzer/pkg/analysis"
	"github.com/kass/go-route-analyzer/pkg/config"
	"github.com/kass/go-route-analyzer/pkg/log"
	"github.com/kass/go-route-analyzer/pkg/models"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a route file and print its route data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := analyzePath(args[0])
			if err != nil {
				return err
			}
			return writeRouteData(cmd.OutOrStdout(), filepath.Base(args[0]), data)
		},
	}
}

// analyzePath reads filename fully and runs the route pipeline on it
func analyzePath(filename string) (models.RouteData, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return models.RouteData{}, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	start := time.Now()
	data, err := analysis.AnalyzeFile(filename, content)
	if err != nil {
		log.Warn("route analysis failed", log.String("file", filename), log.ErrorField(err))
		return models.RouteData{}, err
	}

	log.Debug("route analyzed",
		log.String("file", filename),
		log.Int("points", len(data.Route)),
		log.Float64("distanceKm", data.Distance),
		log.Int("hydrationPoints", len(data.HydrationPoints)),
		log.Duration("took", time.Since(start)))

	return data, nil
}

func writeRouteData(w io.Writer, title string, data models.RouteData) error {
	if config.OutputFormat == config.OutputText {
		_, err := fmt.Fprintln(w, renderRouteSummary(title, data))
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode route data: %w", err)
	}
	return nil
}
