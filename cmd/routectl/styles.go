package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kass/go-route-analyzer/pkg/models"
)

// Trail-map palette; adaptive so summaries stay readable on light terminals
var (
	trailGreen = lipgloss.AdaptiveColor{Light: "#1B6E3A", Dark: "#7BD389"}
	trailOchre = lipgloss.AdaptiveColor{Light: "#9A5B00", Dark: "#F2B950"}
	trailRed   = lipgloss.AdaptiveColor{Light: "#B3261E", Dark: "#F28B82"}
	trailGrey  = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8F98"}
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(trailGreen)
	labelStyle  = lipgloss.NewStyle().Foreground(trailGrey).Width(16)
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(trailOchre)
	mutedStyle  = lipgloss.NewStyle().Foreground(trailGrey).Italic(true)
	okStyle     = lipgloss.NewStyle().Foreground(trailGreen)
	failStyle   = lipgloss.NewStyle().Foreground(trailRed)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false).
			BorderForeground(trailGreen).
			Padding(0, 1)
)

func formatLocation(loc models.Location) string {
	return fmt.Sprintf("%.5f, %.5f", loc.Lat, loc.Lon)
}

func summaryRow(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

// renderRouteSummary is the text form of a RouteData
func renderRouteSummary(title string, data models.RouteData) string {
	rows := []string{
		headerStyle.Render(title),
		"",
		summaryRow("Distance", fmt.Sprintf("%.1f km", data.Distance)),
		summaryRow("Elevation gain", fmt.Sprintf("%d m", data.Elevation)),
		summaryRow("Estimated time", data.EstimatedTime),
		summaryRow("Points", fmt.Sprintf("%d", len(data.Route))),
		summaryRow("Start", formatLocation(data.Center)),
		"",
	}

	if len(data.HydrationPoints) == 0 {
		rows = append(rows, mutedStyle.Render("No hydration points"))
	} else {
		rows = append(rows, headerStyle.Render("Hydration points"))
		for i, p := range data.HydrationPoints {
			rows = append(rows, fmt.Sprintf("  %d. %s", i+1, formatLocation(p)))
		}
	}

	return panelStyle.Render(strings.Join(rows, "\n"))
}
