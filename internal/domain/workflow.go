package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"modxml.dev/pkg/modxml/internal/adapter"
	"modxml.dev/pkg/modxml/internal/controller"
	"modxml.dev/pkg/modxml/internal/domain/models"
	m "modxml.dev/pkg/modxml/internal/model"
)

// ErrNotDirectory is returned when a configured directory is a regular file.
var ErrNotDirectory = errors.New("not a directory")

// VerifyArgs contains the arguments of a batch verification.
type VerifyArgs struct {
	Directory         m.Path
	ModelDirectories  []m.Path
	Recursive         bool
	Exclude           []string // globs matched against base name and relative path
	Parallel          bool
	MaxParallelism    int
	Strict            bool
	FileSizeThreshold int64
	Reports           m.Path
	Formats           []m.OutputFormat
}

// Validate checks the arguments before any file is touched.
func (a VerifyArgs) Validate() error {
	if strings.TrimSpace(string(a.Directory)) == "" {
		return fmt.Errorf("%w: xml directory is empty", m.ErrInvalidConfig)
	}

	if len(a.Formats) == 0 {
		return fmt.Errorf("%w: no output format selected", m.ErrInvalidConfig)
	}

	for _, format := range a.Formats {
		if !format.Valid() {
			return fmt.Errorf("%w: unknown output format %q", m.ErrInvalidConfig, format)
		}
	}

	if a.MaxParallelism <= 0 {
		return fmt.Errorf("%w: max parallelism must be positive, got %d", m.ErrInvalidConfig, a.MaxParallelism)
	}

	if a.FileSizeThreshold < 0 {
		return fmt.Errorf("%w: file size threshold must not be negative", m.ErrInvalidConfig)
	}

	for _, pattern := range a.Exclude {
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("%w: exclude pattern %q: %v", m.ErrInvalidConfig, pattern, err)
		}
	}

	if a.writesReports() && strings.TrimSpace(string(a.Reports)) == "" {
		return fmt.Errorf("%w: output directory is empty", m.ErrInvalidConfig)
	}

	return nil
}

func (a VerifyArgs) workers() int {
	if !a.Parallel {
		return 1
	}

	return a.MaxParallelism
}

func (a VerifyArgs) writesReports() bool {
	for _, format := range a.Formats {
		if format != m.FormatConsole {
			return true
		}
	}

	return false
}

// Workflow runs the user-facing operations.
type Workflow interface {
	// Verify round-trips every XML document of a directory.
	Verify(ctx context.Context, args VerifyArgs) (m.Summary, error)
	// Watch re-verifies documents as they change until ctx ends.
	Watch(ctx context.Context, args VerifyArgs) error
	// Compare structurally compares two documents.
	Compare(ctx context.Context, args CompareArgs) (m.DiffReport, error)
	// RoundTrip verifies one document and optionally writes its re-serialized form.
	RoundTrip(ctx context.Context, args RoundTripArgs) (m.FileResult, error)
	// Dump prints the clean projection of one document.
	Dump(ctx context.Context, args DumpArgs) error
	// Models lists the registered models and their bound definitions.
	Models(ctx context.Context, args ModelsArgs) ([]m.ModelInfo, error)
	// Unadapted lists the XML files no registered model is bound to.
	Unadapted(ctx context.Context, args UnadaptedArgs) ([]m.UnadaptedFile, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.DefinitionStore
	adapter.ReportStore
	controller.UI
	comparator Comparator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	definitionStore adapter.DefinitionStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
	comparator Comparator,
) Workflow {
	if comparator == nil {
		comparator = NewComparator()
	}

	return &workflow{
		SourceFSAdapter: fsAdapter,
		DefinitionStore: definitionStore,
		ReportStore:     reportStore,
		UI:              ui,
		comparator:      comparator,
	}
}

func (w *workflow) Verify(ctx context.Context, args VerifyArgs) (m.Summary, error) {
	if err := args.Validate(); err != nil {
		return m.Summary{}, err
	}

	files, err := w.collectFiles(args)
	if err != nil {
		slog.Error("Failed to list XML files", "directory", args.Directory, "error", err)
		return m.Summary{}, fmt.Errorf("list files: %w", err)
	}

	registry, err := w.loadRegistry(args.ModelDirectories)
	if err != nil {
		slog.Error("Failed to load model definitions", "directories", args.ModelDirectories, "error", err)
		return m.Summary{}, fmt.Errorf("load model definitions: %w", err)
	}

	if err := w.Start(ctx, controller.WithVerifyMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return m.Summary{}, err
	}

	// Reporting continues after cancellation so the partial summary is shown.
	display := context.WithoutCancel(ctx)
	defer w.Close(display)

	summary := m.Summary{
		RunID:     uuid.NewString(),
		Directory: args.Directory,
		StartedAt: time.Now(),
	}

	w.DisplayRunInfo(display, controller.RunInfo{
		RunID:     summary.RunID,
		Directory: args.Directory,
		Files:     len(files),
		Workers:   args.workers(),
		Strict:    args.Strict,
	})

	slog.Info("Verification started", "run", summary.RunID, "directory", args.Directory,
		"files", len(files), "workers", args.workers())

	verifier := NewVerifier(w.SourceFSAdapter, w.comparator, VerifierOptions{
		Registry:          registry,
		Strict:            args.Strict,
		FileSizeThreshold: args.FileSizeThreshold,
	})

	results, skipped := w.verifyFiles(ctx, verifier, files, args.workers())

	summarize(&summary, results)
	summary.Skipped = skipped
	summary.Cancelled = skipped > 0
	summary.Duration = time.Since(summary.StartedAt)

	slog.Info("Verification finished", "run", summary.RunID, "passed", summary.Passed,
		"failed", summary.Failed, "errored", summary.Errored, "skipped", summary.Skipped)

	if args.writesReports() {
		written, err := w.SaveReports(args.Reports, args.Formats, summary)
		if err != nil {
			slog.Error("Failed to save reports", "directory", args.Reports, "error", err)
			return summary, fmt.Errorf("save reports: %w", err)
		}

		w.DisplayReportsSaved(display, written)
	}

	if slices.Contains(args.Formats, m.FormatConsole) {
		w.DisplaySummary(display, summary)
	}

	return summary, nil
}

// verifyFiles runs the verifier over files on a bounded pool. Once ctx is
// done no further file is started; files already running finish.
func (w *workflow) verifyFiles(ctx context.Context, verifier Verifier, files []m.File, workers int) ([]m.FileResult, int) {
	var (
		results      = make([]m.FileResult, 0, len(files))
		skipped      int
		resultsMutex sync.Mutex
	)

	running := context.WithoutCancel(ctx)

	var group errgroup.Group
	group.SetLimit(workers)

	for i, file := range files {
		if ctx.Err() != nil {
			resultsMutex.Lock()
			skipped += len(files) - i
			resultsMutex.Unlock()

			break
		}

		group.Go(func() error {
			if ctx.Err() != nil {
				resultsMutex.Lock()
				skipped++
				resultsMutex.Unlock()

				return nil
			}

			result := verifier.Verify(running, file)

			resultsMutex.Lock()
			results = append(results, result)
			resultsMutex.Unlock()

			w.DisplayFileResult(running, result)

			return nil
		})
	}

	_ = group.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].File.ShortPath < results[j].File.ShortPath
	})

	return results, skipped
}

func summarize(summary *m.Summary, results []m.FileResult) {
	summary.Files = results

	for _, result := range results {
		switch result.Status {
		case m.Passed:
			summary.Passed++
		case m.Failed:
			summary.Failed++
		default:
			summary.Errored++
		}

		summary.Aggregate = summary.Aggregate.Merge(result.Report.Prefixed(string(result.File.ShortPath)))
	}
}

// collectFiles lists the XML documents of args.Directory sorted by relative path.
func (w *workflow) collectFiles(args VerifyArgs) ([]m.File, error) {
	if err := w.requireDirectory(args.Directory); err != nil {
		return nil, fmt.Errorf("xml directory: %w", err)
	}

	var files []m.File

	err := w.Walk(args.Directory, args.Recursive, func(p string, entry os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || !isXMLFile(p) {
			return nil
		}

		rel, err := w.RelPath(args.Directory, m.Path(p))
		if err != nil {
			return err
		}

		short := m.Path(filepath.ToSlash(string(rel)))
		if excluded(args.Exclude, short) {
			slog.Debug("Excluded file", "path", p)
			return nil
		}

		files = append(files, m.File{FullPath: m.Path(p), ShortPath: short, Size: entry.Size()})

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].ShortPath < files[j].ShortPath })

	return files, nil
}

func (w *workflow) requireDirectory(dir m.Path) error {
	info, err := w.FileInfo(dir)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	return nil
}

// loadRegistry returns the built-in registry extended with the
// definitions found in dirs.
func (w *workflow) loadRegistry(dirs []m.Path) (*models.Registry, error) {
	var definitions []m.ModelDefinition

	for _, dir := range dirs {
		loaded, err := w.LoadDefinitions(dir)
		if err != nil {
			return nil, err
		}

		definitions = append(definitions, loaded...)
	}

	if len(definitions) == 0 {
		return models.Default(), nil
	}

	return models.Default().WithDefinitions(definitions)
}

func isXMLFile(p string) bool {
	return strings.EqualFold(filepath.Ext(p), ".xml")
}

func excluded(patterns []string, rel m.Path) bool {
	name := path.Base(string(rel))

	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}

		if ok, _ := path.Match(pattern, string(rel)); ok {
			return true
		}
	}

	return false
}
