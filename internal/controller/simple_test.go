package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "modxml.dev/pkg/modxml/internal/model"
)

func newTestUI(t *testing.T) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd, false), out
}

func TestSimpleUI_DisplayFileResult(t *testing.T) {
	passed := m.FileResult{File: m.File{ShortPath: "a.xml"}, Model: "BannerIcons", Status: m.Passed}
	failed := m.FileResult{
		File:   m.File{ShortPath: "b.xml"},
		Model:  "PhysicsMaterials",
		Status: m.Failed,
		Report: m.DiffReport{TextDifferences: []string{"/base: A text='a', B text='b'"}},
	}

	t.Run("verify mode hides passed files", func(t *testing.T) {
		ui, out := newTestUI(t)
		require.NoError(t, ui.Start(context.Background(), WithVerifyMode()))

		ui.DisplayFileResult(context.Background(), passed)
		ui.DisplayFileResult(context.Background(), failed)

		assert.Equal(t, "FAILED b.xml (PhysicsMaterials): 1 difference(s)\n", out.String())
	})

	t.Run("watch mode prints every file", func(t *testing.T) {
		ui, out := newTestUI(t)
		require.NoError(t, ui.Start(context.Background(), WithWatchMode()))

		ui.DisplayFileResult(context.Background(), passed)

		assert.Equal(t, "PASSED a.xml (BannerIcons)\n", out.String())
	})

	t.Run("cancelled context prints nothing", func(t *testing.T) {
		ui, out := newTestUI(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ui.DisplayFileResult(ctx, failed)
		assert.Empty(t, out.String())
	})
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, out := newTestUI(t)

	ui.DisplaySummary(context.Background(), m.Summary{
		Directory: "/mods",
		Files: []m.FileResult{
			{File: m.File{ShortPath: "banner_icons.xml"}, Model: "BannerIcons", Status: m.Passed},
			{File: m.File{ShortPath: "broken.xml"}, Status: m.ParseFailed, Error: "line 3"},
		},
		Passed:    1,
		Errored:   1,
		Cancelled: true,
		Skipped:   2,
	})

	text := out.String()
	assert.Contains(t, text, "banner_icons.xml")
	assert.Contains(t, text, "PARSE_ERROR")
	assert.Contains(t, text, "Pass rate: 50.00% (1/2)")
	assert.Contains(t, text, "Cancelled: 2 file(s) skipped")
}

func TestSimpleUI_DisplaySummary_Empty(t *testing.T) {
	ui, out := newTestUI(t)

	ui.DisplaySummary(context.Background(), m.Summary{Directory: "/mods"})

	assert.Equal(t, "No XML files found in /mods\n", out.String())
}

func TestSimpleUI_DisplayDiffReport(t *testing.T) {
	t.Run("equal", func(t *testing.T) {
		ui, out := newTestUI(t)

		ui.DisplayDiffReport(context.Background(), "a.xml", "b.xml", m.DiffReport{})

		assert.Equal(t, "A: a.xml\nB: b.xml\nDocuments are structurally equal\n", out.String())
	})

	t.Run("categories in order", func(t *testing.T) {
		ui, out := newTestUI(t)

		ui.DisplayDiffReport(context.Background(), "a.xml", "b.xml", m.DiffReport{
			ExtraNodes:        []string{"/root/extra[0] (missing in A)"},
			MissingAttributes: []string{"/root/@attr (missing in B)"},
		})

		assert.Equal(t, "A: a.xml\nB: b.xml\n"+
			"ExtraNodes (1):\n  - /root/extra[0] (missing in A)\n"+
			"MissingAttributes (1):\n  - /root/@attr (missing in B)\n"+
			"2 difference(s)\n", out.String())
	})
}

func TestSimpleUI_DisplayRoundTrip(t *testing.T) {
	ui, out := newTestUI(t)

	ui.DisplayRoundTrip(context.Background(), m.FileResult{
		File:     m.File{ShortPath: "x.xml"},
		Status:   m.Passed,
		Unmapped: []string{"/base/extra[0]"},
	}, []byte("<base />\n"))

	assert.Equal(t, "PASSED x.xml (-)\nunmapped: /base/extra[0]\n\n<base />\n", out.String())
}

func TestSimpleUI_DisplayModels(t *testing.T) {
	ui, out := newTestUI(t)

	ui.DisplayModels(context.Background(), []m.ModelInfo{
		{Name: "BannerIcons", Root: "base", Type: "banner_icons", Files: []string{"banner_icons.xml"}},
	})

	text := out.String()
	assert.Contains(t, text, "BannerIcons")
	assert.Contains(t, text, "banner_icons.xml")
	assert.Contains(t, text, "TOTAL MODELS 1")
}

func TestSimpleUI_DisplayUnadapted(t *testing.T) {
	t.Run("files", func(t *testing.T) {
		ui, out := newTestUI(t)

		ui.DisplayUnadapted(context.Background(), []m.UnadaptedFile{
			{File: m.File{ShortPath: "looknfeel.xml", Size: 20480}, ExpectedModel: "LookAndFeel", Complexity: m.Medium},
			{File: m.File{ShortPath: "unknown.xml", Size: 12}, ExpectedModel: "Unknown"},
		})

		text := out.String()
		assert.Contains(t, text, "LookAndFeel")
		assert.Contains(t, text, "20.0 KB")
		assert.Contains(t, text, "12 B")
		assert.Contains(t, text, "medium")
		assert.Contains(t, text, "TOTAL UNADAPTED 2")
	})

	t.Run("none", func(t *testing.T) {
		ui, out := newTestUI(t)

		ui.DisplayUnadapted(context.Background(), nil)

		assert.Equal(t, "Every XML file has a model.\n", out.String())
	})
}

func TestSimpleUI_DisplayProjection(t *testing.T) {
	ui, out := newTestUI(t)

	err := ui.DisplayProjection(context.Background(), "a.xml", "LanguageStrings", map[string]any{"type": "string"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), `"model": "LanguageStrings"`)
	assert.Contains(t, out.String(), `"type": "string"`)
}

func TestSimpleUI_DisplayReportsSaved(t *testing.T) {
	ui, out := newTestUI(t)

	ui.DisplayReportsSaved(context.Background(), []m.Path{"r/report.md", "r/report.csv"})

	assert.Equal(t, "Report written: r/report.md\nReport written: r/report.csv\n", out.String())
}

func TestStartOptions(t *testing.T) {
	config := StartConfig{}
	WithWatchMode()(&config)
	assert.Equal(t, ModeWatch, config.Mode())

	WithInspectMode()(&config)
	assert.Equal(t, ModeInspect, config.Mode())
}
