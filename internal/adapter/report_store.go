package adapter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	m "modxml.dev/pkg/modxml/internal/model"
)

const reportFilePerm = 0o644

// Report file names inside the output directory.
const (
	MarkdownReportName = "report.md"
	CSVReportName      = "report.csv"
	JSONReportName     = "report.json"
	HTMLReportName     = "report.html"
)

// ReportStore persists the projections of a batch summary.
type ReportStore interface {
	// SaveReports writes one file per requested format into dir and returns
	// the written paths. The console format is ignored here.
	SaveReports(dir m.Path, formats []m.OutputFormat, summary m.Summary) ([]m.Path, error)
}

// FileReportStore writes reports through a SourceFSAdapter.
type FileReportStore struct {
	fs SourceFSAdapter
}

// NewReportStore returns a report store backed by fs.
func NewReportStore(fs SourceFSAdapter) *FileReportStore {
	return &FileReportStore{fs: fs}
}

// SaveReports renders and writes every requested report.
func (s *FileReportStore) SaveReports(dir m.Path, formats []m.OutputFormat, summary m.Summary) ([]m.Path, error) {
	var written []m.Path

	for _, format := range formats {
		name, content, err := render(format, summary)
		if err != nil {
			return written, err
		}

		if name == "" {
			continue
		}

		path := m.Path(filepath.Join(string(dir), name))
		if err := s.fs.WriteFile(path, content, reportFilePerm); err != nil {
			return written, fmt.Errorf("write %s report: %w", format, err)
		}

		written = append(written, path)
	}

	return written, nil
}

func render(format m.OutputFormat, summary m.Summary) (string, []byte, error) {
	switch format {
	case m.FormatConsole:
		return "", nil, nil
	case m.FormatMarkdown:
		return MarkdownReportName, []byte(RenderMarkdown(summary)), nil
	case m.FormatCSV:
		content, err := RenderCSV(summary)
		return CSVReportName, content, err
	case m.FormatJSON:
		content, err := RenderJSON(summary)
		return JSONReportName, content, err
	case m.FormatHTML:
		content, err := RenderHTML(summary)
		return HTMLReportName, content, err
	default:
		return "", nil, fmt.Errorf("%w: unknown output format %q", m.ErrInvalidConfig, format)
	}
}

// RenderMarkdown renders the summary as a markdown document.
func RenderMarkdown(summary m.Summary) string {
	var b strings.Builder

	b.WriteString("# XML round-trip report\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", summary.RunID)
	fmt.Fprintf(&b, "- Directory: `%s`\n", summary.Directory)
	fmt.Fprintf(&b, "- Started: %s\n", summary.StartedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "- Duration: %s\n", summary.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "- Files: %d (passed %d, failed %d, errors %d, skipped %d)\n",
		summary.Total(), summary.Passed, summary.Failed, summary.Errored, summary.Skipped)
	fmt.Fprintf(&b, "- Pass rate: %.2f%%\n", summary.PassRate())

	if summary.Cancelled {
		b.WriteString("- Cancelled: yes\n")
	}

	if len(summary.Files) == 0 {
		b.WriteString("\nNo XML files found.\n")
		return b.String()
	}

	b.WriteString("\n| File | Model | Status | Differences | Size | Duration |\n")
	b.WriteString("|---|---|---|---|---:|---:|\n")

	for _, file := range summary.Files {
		size := strconv.FormatInt(file.File.Size, 10)
		if file.Large {
			size += " (large)"
		}

		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s |\n",
			cell(string(file.File.ShortPath)), cell(file.Model), file.Status,
			file.Report.Count(), size, file.Duration.Round(time.Microsecond))
	}

	writeFailures(&b, summary.Files)

	return b.String()
}

func writeFailures(b *strings.Builder, files []m.FileResult) {
	header := false

	for _, file := range files {
		if file.Status == m.Passed {
			continue
		}

		if !header {
			b.WriteString("\n## Failures\n")

			header = true
		}

		fmt.Fprintf(b, "\n### %s\n\n", file.File.ShortPath)
		fmt.Fprintf(b, "Status: **%s**\n", file.Status)

		if file.Error != "" {
			fmt.Fprintf(b, "\nError: `%s`\n", strings.ReplaceAll(file.Error, "`", "'"))
		}

		for _, category := range m.DiffCategories {
			entries := file.Report.Entries(category)
			if len(entries) == 0 {
				continue
			}

			fmt.Fprintf(b, "\n**%s** (%d)\n\n", category, len(entries))

			for _, entry := range entries {
				fmt.Fprintf(b, "- `%s`\n", strings.ReplaceAll(entry, "`", "'"))
			}
		}

		if file.Diff != "" {
			b.WriteString("\n```diff\n")
			b.WriteString(file.Diff)

			if !strings.HasSuffix(file.Diff, "\n") {
				b.WriteByte('\n')
			}

			b.WriteString("```\n")
		}
	}
}

func cell(value string) string {
	return strings.ReplaceAll(value, "|", `\|`)
}

var csvHeader = []string{
	"path", "model", "status", "differences",
	"missing_nodes", "extra_nodes", "node_name_differences",
	"missing_attributes", "extra_attributes", "attribute_value_differences", "text_differences",
	"unmapped", "large", "size", "duration_ms", "error",
}

// RenderCSV renders one row per file.
func RenderCSV(summary m.Summary) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, file := range summary.Files {
		row := []string{
			string(file.File.ShortPath),
			file.Model,
			file.Status.String(),
			strconv.Itoa(file.Report.Count()),
		}

		for _, category := range m.DiffCategories {
			row = append(row, strconv.Itoa(len(file.Report.Entries(category))))
		}

		row = append(row,
			strconv.Itoa(len(file.Unmapped)),
			strconv.FormatBool(file.Large),
			strconv.FormatInt(file.File.Size, 10),
			strconv.FormatInt(file.Duration.Milliseconds(), 10),
			file.Error,
		)

		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row %s: %w", file.File.ShortPath, err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderJSON renders the summary as indented JSON.
func RenderJSON(summary m.Summary) ([]byte, error) {
	content, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json report: %w", err)
	}

	return append(content, '\n'), nil
}

// RenderHTML renders the markdown report to a standalone HTML page.
func RenderHTML(summary m.Summary) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert([]byte(RenderMarkdown(summary)), &body); err != nil {
		return nil, fmt.Errorf("render html report: %w", err)
	}

	var page bytes.Buffer

	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<title>XML round-trip report</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	return page.Bytes(), nil
}
