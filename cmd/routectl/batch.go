package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/kass/go-route-analyzer/pkg/models"
)

type batchResult struct {
	file string
	data models.RouteData
	err  error
}

func newBatchCmd() *cobra.Command {
	var noTUI bool

	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Analyze several route files with a progress view",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noTUI || !isatty.IsTerminal(os.Stdout.Fd()) {
				results := lo.Map(args, func(file string, _ int) batchResult {
					data, err := analyzePath(file)
					return batchResult{file: file, data: data, err: err}
				})
				return writeBatchTable(cmd.OutOrStdout(), results)
			}

			_, err := tea.NewProgram(newBatchModel(args)).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "print a plain table instead of the interactive view")

	return cmd
}

func writeBatchTable(w io.Writer, results []batchResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tPOINTS\tDISTANCE\tELEVATION\tTIME\tHYDRATION\tERROR")
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\t%v\n", filepath.Base(r.file), r.err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%.1f km\t%d m\t%s\t%d\t\n",
			filepath.Base(r.file), len(r.data.Route), r.data.Distance,
			r.data.Elevation, r.data.EstimatedTime, len(r.data.HydrationPoints))
	}
	return tw.Flush()
}

type fileDoneMsg batchResult

type batchModel struct {
	files    []string
	results  []batchResult
	spinner  spinner.Model
	progress progress.Model
	width    int
}

func newBatchModel(files []string) batchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = okStyle

	return batchModel{
		files:    files,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient()),
		width:    80,
	}
}

func analyzeCmd(file string) tea.Cmd {
	return func() tea.Msg {
		data, err := analyzePath(file)
		return fileDoneMsg{file: file, data: data, err: err}
	}
}

func (m batchModel) done() bool {
	return len(m.results) == len(m.files)
}

func (m batchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, analyzeCmd(m.files[0]))
}

func (m batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = max(msg.Width-10, 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case fileDoneMsg:
		m.results = append(m.results, batchResult(msg))
		cmds := []tea.Cmd{m.progress.SetPercent(float64(len(m.results)) / float64(len(m.files)))}
		if !m.done() {
			cmds = append(cmds, analyzeCmd(m.files[len(m.results)]))
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m batchModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Route Batch Analysis"))
	b.WriteString("\n\n")

	if !m.done() {
		current := filepath.Base(m.files[len(m.results)])
		fmt.Fprintf(&b, "%s Analyzing %s (%d/%d)...\n\n",
			m.spinner.View(), current, len(m.results)+1, len(m.files))
		b.WriteString(m.progress.View())
	} else {
		b.WriteString(renderBatchSummary(m.results))
	}

	// Show recent files
	if len(m.results) > 0 && !m.done() {
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("Recent activity:"))
		b.WriteString("\n")
		for _, r := range lo.Slice(m.results, max(len(m.results)-5, 0), len(m.results)) {
			b.WriteString(mutedStyle.Render("• " + batchLine(r)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Press 'q' to quit"))

	return b.String()
}

func batchLine(r batchResult) string {
	name := filepath.Base(r.file)
	if r.err != nil {
		return fmt.Sprintf("%s: %v", name, r.err)
	}
	return fmt.Sprintf("%s: %.1f km, %d m, %s", name, r.data.Distance, r.data.Elevation, r.data.EstimatedTime)
}

func renderBatchSummary(results []batchResult) string {
	ok, failed := lo.FilterReject(results, func(r batchResult, _ int) bool { return r.err == nil })
	totalKm := lo.SumBy(ok, func(r batchResult) float64 { return r.data.Distance })

	var b strings.Builder
	b.WriteString(headerStyle.Render("Batch Complete") + "\n\n")
	b.WriteString(summaryRow("Analyzed", fmt.Sprintf("%d of %d", len(ok), len(results))) + "\n")
	b.WriteString(summaryRow("Total distance", fmt.Sprintf("%.1f km", totalKm)) + "\n")
	for _, r := range ok {
		b.WriteString("\n" + okStyle.Render("✓ "+batchLine(r)))
	}
	for _, r := range failed {
		b.WriteString("\n" + failStyle.Render("✗ "+batchLine(r)))
	}

	return panelStyle.Render(b.String())
}
