// Package controller provides console output for verification runs.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "modxml.dev/pkg/modxml/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeVerify StartMode = iota
	ModeWatch
	ModeInspect
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured start mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// WithVerifyMode sets the UI to batch verification mode.
func WithVerifyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeVerify
	}
}

// WithWatchMode sets the UI to watch mode, where every re-verified file is
// printed as it completes.
func WithWatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
	}
}

// WithInspectMode sets the UI to single-document mode (compare, roundtrip, dump).
func WithInspectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInspect
	}
}

// RunInfo describes a batch before it starts.
type RunInfo struct {
	RunID     string
	Directory m.Path
	Files     int
	Workers   int
	Strict    bool
}

// UI defines the interface for displaying verification results.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayRunInfo(ctx context.Context, info RunInfo)
	DisplayFileResult(ctx context.Context, result m.FileResult)
	DisplaySummary(ctx context.Context, summary m.Summary)
	DisplayDiffReport(ctx context.Context, a, b m.Path, report m.DiffReport)
	DisplayRoundTrip(ctx context.Context, result m.FileResult, output []byte)
	DisplayModels(ctx context.Context, models []m.ModelInfo)
	DisplayUnadapted(ctx context.Context, files []m.UnadaptedFile)
	DisplayProjection(ctx context.Context, path m.Path, model string, data map[string]any) error
	DisplayReportsSaved(ctx context.Context, paths []m.Path)
}

// NewUI returns the console UI for cmd. Status colours are enabled when tty
// is true.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
