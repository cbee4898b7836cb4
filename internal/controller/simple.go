package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "modxml.dev/pkg/modxml/internal/model"
)

var (
	passedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd   *cobra.Command
	color bool

	mu   sync.Mutex
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, color bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, color: color}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := StartConfig{}
	for _, option := range options {
		option(&config)
	}

	s.mu.Lock()
	s.mode = config.mode
	s.mu.Unlock()

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayRunInfo prints the batch header.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, info RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	mode := ""
	if info.Strict {
		mode = ", strict"
	}

	s.printf("Verifying %d file(s) in %s with %d worker(s)%s\n", info.Files, info.Directory, info.Workers, mode)
	s.printf("%s\n", s.style(faintStyle, "run "+info.RunID))
}

// DisplayFileResult prints the outcome of one file. In verify mode only
// files that did not pass are printed.
func (s *SimpleUI) DisplayFileResult(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.mu.Lock()
	mode := s.mode
	s.mu.Unlock()

	if mode == ModeVerify && result.Status == m.Passed {
		return
	}

	line := fmt.Sprintf("%s %s", s.status(result.Status), result.File.ShortPath)
	if result.Model != "" {
		line += " (" + result.Model + ")"
	}

	if count := result.Report.Count(); count > 0 {
		line += fmt.Sprintf(": %d difference(s)", count)
	}

	if result.Error != "" {
		line += ": " + result.Error
	}

	s.printf("%s\n", line)
}

// DisplaySummary prints the per-file table and the totals.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(summary.Files) == 0 {
		s.printf("No XML files found in %s\n", summary.Directory)
		return
	}

	s.printf("\n%s", s.renderSummaryTable(summary))

	s.printf("Pass rate: %.2f%% (%d/%d) in %s\n",
		summary.PassRate(), summary.Passed, summary.Total(), summary.Duration.Round(time.Millisecond))

	if summary.Cancelled {
		s.printf("%s\n", s.style(errorStyle, fmt.Sprintf("Cancelled: %d file(s) skipped", summary.Skipped)))
	}
}

func (s *SimpleUI) renderSummaryTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Model", "Status", "Differences", "Unmapped"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, file := range summary.Files {
		table.Append([]string{
			string(file.File.ShortPath),
			file.Model,
			s.status(file.Status),
			fmt.Sprintf("%d", file.Report.Count()),
			fmt.Sprintf("%d", len(file.Unmapped)),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", summary.Total()),
		"",
		fmt.Sprintf("%d failed", summary.Failed+summary.Errored),
		fmt.Sprintf("%d", summary.Aggregate.Count()),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayDiffReport prints every non-empty category of report.
func (s *SimpleUI) DisplayDiffReport(ctx context.Context, a, b m.Path, report m.DiffReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("A: %s\nB: %s\n", a, b)

	if report.IsStructurallyEqual() {
		s.printf("%s\n", s.style(passedStyle, "Documents are structurally equal"))
		return
	}

	s.printDiffReport(report)
	s.printf("%s\n", s.style(failedStyle, fmt.Sprintf("%d difference(s)", report.Count())))
}

func (s *SimpleUI) printDiffReport(report m.DiffReport) {
	for _, category := range m.DiffCategories {
		entries := report.Entries(category)
		if len(entries) == 0 {
			continue
		}

		s.printf("%s (%d):\n", category, len(entries))

		for _, entry := range entries {
			s.printf("  - %s\n", entry)
		}
	}
}

// DisplayRoundTrip prints the outcome of a single round trip. A non-nil
// output is printed after the result.
func (s *SimpleUI) DisplayRoundTrip(ctx context.Context, result m.FileResult, output []byte) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s (%s)\n", s.status(result.Status), result.File.ShortPath, orDash(result.Model))

	if result.Error != "" {
		s.printf("error: %s\n", result.Error)
	}

	for _, path := range result.Unmapped {
		s.printf("unmapped: %s\n", path)
	}

	s.printDiffReport(result.Report)

	if result.Diff != "" {
		s.printf("\n%s", result.Diff)
	}

	if output != nil {
		s.printf("\n%s", output)
	}
}

// DisplayModels prints the registered models.
func (s *SimpleUI) DisplayModels(ctx context.Context, models []m.ModelInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Model", "Root", "Type", "Files", "Aliases", "Definitions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, model := range models {
		table.Append([]string{
			model.Name,
			model.Root,
			orDash(model.Type),
			orDash(strings.Join(model.Files, " ")),
			orDash(strings.Join(model.Aliases, " ")),
			orDash(strings.Join(model.Bound, " ")),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Models %d", len(models)), "", "", "", "", ""})
	table.Render()

	s.printf("%s", tableBuffer.String())
}

// DisplayUnadapted prints the files no model is bound to.
func (s *SimpleUI) DisplayUnadapted(ctx context.Context, files []m.UnadaptedFile) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(files) == 0 {
		s.printf("Every XML file has a model.\n")
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Expected Model", "Size", "Complexity"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, file := range files {
		table.Append([]string{
			string(file.File.ShortPath),
			orDash(file.ExpectedModel),
			formatSize(file.File.Size),
			file.Complexity.String(),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Unadapted %d", len(files)), "", "", ""})
	table.Render()

	s.printf("%s", tableBuffer.String())
}

func formatSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}

	return fmt.Sprintf("%.1f KB", float64(size)/1024)
}

// DisplayProjection prints the clean projection of a document as JSON.
func (s *SimpleUI) DisplayProjection(ctx context.Context, path m.Path, model string, data map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := json.MarshalIndent(map[string]any{
		"path":  path,
		"model": model,
		"data":  data,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode projection: %w", err)
	}

	s.printf("%s\n", content)

	return nil
}

// DisplayReportsSaved lists the report files written for a run.
func (s *SimpleUI) DisplayReportsSaved(ctx context.Context, paths []m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, path := range paths {
		s.printf("Report written: %s\n", path)
	}
}

func (s *SimpleUI) status(status m.FileStatus) string {
	label := strings.ToUpper(status.String())

	switch status {
	case m.Passed:
		return s.style(passedStyle, label)
	case m.Failed:
		return s.style(failedStyle, label)
	default:
		return s.style(errorStyle, label)
	}
}

func (s *SimpleUI) style(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}
