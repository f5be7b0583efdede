package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kass/go-route-analyzer/pkg/analysis"
	"github.com/kass/go-route-analyzer/pkg/config"
	"github.com/kass/go-route-analyzer/pkg/log"
	"github.com/kass/go-route-analyzer/pkg/models"
)

type snapOutput struct {
	Snapped  models.Location  `json:"snapped"`
	Index    int              `json:"index"`
	OffsetKm float64          `json:"offsetKm"`
	Route    models.RouteData `json:"routeData"`
}

func newSnapCmd() *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "snap <file>",
		Short: "Add a manual hydration point, snapped to the nearest route point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := analyzePath(args[0])
			if err != nil {
				return err
			}

			updated, snap, err := analysis.AddHydrationPoint(data, models.Location{Lat: lat, Lon: lon})
			if err != nil {
				return err
			}
			log.Info("hydration point snapped",
				log.Int("index", snap.Index),
				log.Float64("offsetKm", snap.OffsetKm))

			if config.OutputFormat == config.OutputText {
				fmt.Fprintf(cmd.OutOrStdout(), "Snapped to point #%d (%s), %.3f km away\n",
					snap.Index, formatLocation(snap.Location), snap.OffsetKm)
				return writeRouteData(cmd.OutOrStdout(), filepath.Base(args[0]), updated)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(snapOutput{
				Snapped:  snap.Location,
				Index:    snap.Index,
				OffsetKm: snap.OffsetKm,
				Route:    updated,
			})
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude of the manual hydration point")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude of the manual hydration point")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}
