package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"modxml.dev/pkg/modxml/internal/adapter"
	"modxml.dev/pkg/modxml/internal/domain/models"
	"modxml.dev/pkg/modxml/internal/domain/schema"
	m "modxml.dev/pkg/modxml/internal/model"
	"modxml.dev/pkg/modxml/internal/xmltree"
)

const diffContextLines = 3

// ErrUnreadableOutput is returned when the serialized document does not parse.
var ErrUnreadableOutput = errors.New("serialized document is not well-formed")

// Verifier checks that a document survives parse, serialize and re-parse
// without structural change.
type Verifier interface {
	Verify(ctx context.Context, file m.File) m.FileResult
	// RoundTrip verifies path and also returns the re-serialized document.
	RoundTrip(ctx context.Context, path m.Path) (RoundTripOutput, error)
	// Project returns the clean projection of the document at path.
	Project(ctx context.Context, path m.Path) (Projection, error)
}

// VerifierOptions configures a Verifier.
type VerifierOptions struct {
	Registry          *models.Registry
	Strict            bool
	FileSizeThreshold int64
}

// RoundTripOutput is the outcome of a single round trip.
type RoundTripOutput struct {
	Result m.FileResult
	Output []byte
}

// Projection is the clean projection of one document.
type Projection struct {
	Path  m.Path
	Model string
	Data  map[string]any
}

type verifier struct {
	fsAdapter  adapter.SourceFSAdapter
	comparator Comparator
	options    VerifierOptions
}

// NewVerifier constructs a Verifier reading documents through fsAdapter.
// A nil registry falls back to the built-in one.
func NewVerifier(fsAdapter adapter.SourceFSAdapter, comparator Comparator, options VerifierOptions) Verifier {
	if options.Registry == nil {
		options.Registry = models.Default()
	}

	if comparator == nil {
		comparator = NewComparator()
	}

	return &verifier{
		fsAdapter:  fsAdapter,
		comparator: comparator,
		options:    options,
	}
}

func (v *verifier) Verify(ctx context.Context, file m.File) m.FileResult {
	result, _ := v.run(ctx, file)
	return result
}

func (v *verifier) RoundTrip(ctx context.Context, path m.Path) (RoundTripOutput, error) {
	info, err := v.fsAdapter.FileInfo(path)
	if err != nil {
		return RoundTripOutput{}, fmt.Errorf("stat %s: %w", path, err)
	}

	result, output := v.run(ctx, m.File{FullPath: path, ShortPath: path, Size: info.Size()})

	return RoundTripOutput{Result: result, Output: output}, nil
}

func (v *verifier) Project(ctx context.Context, path m.Path) (Projection, error) {
	if err := ctx.Err(); err != nil {
		return Projection{}, err
	}

	data, err := v.fsAdapter.ReadFile(path)
	if err != nil {
		return Projection{}, fmt.Errorf("read %s: %w", path, err)
	}

	doc, binding, err := v.resolve(path, data)
	if err != nil {
		return Projection{}, err
	}

	projection, err := binding.Codec.Project(doc)
	if err != nil {
		return Projection{}, fmt.Errorf("decode %s: %w", path, withFile(err, path))
	}

	return Projection{Path: path, Model: binding.Name, Data: projection}, nil
}

func (v *verifier) run(ctx context.Context, file m.File) (m.FileResult, []byte) {
	start := time.Now()
	result := m.FileResult{File: file}

	output, err := v.check(ctx, &result)
	if err != nil {
		result.Status = statusFor(err)
		result.Error = err.Error()

		slog.Warn("Round trip failed", "path", file.FullPath, "status", result.Status, "error", err)
	} else {
		slog.Debug("Round trip verified", "path", file.FullPath, "model", result.Model, "status", result.Status)
	}

	result.Duration = time.Since(start)

	return result, output
}

func (v *verifier) check(ctx context.Context, result *m.FileResult) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := result.File.FullPath

	data, err := v.fsAdapter.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if result.File.Size == 0 {
		result.File.Size = int64(len(data))
	}

	result.Large = v.options.FileSizeThreshold > 0 && result.File.Size > v.options.FileSizeThreshold

	source, binding, err := v.resolve(path, data)
	if err != nil {
		return nil, err
	}

	result.Model = binding.Name

	var opts []schema.Option
	if v.options.Strict {
		opts = append(opts, schema.Strict())
	}

	encoded, err := binding.Codec.RoundTrip(source, opts...)
	if err != nil {
		return nil, withFile(err, path)
	}

	result.Unmapped = encoded.Unmapped
	output := encoded.Document.Bytes()

	candidate, err := xmltree.Parse(output)
	if err != nil {
		return output, fmt.Errorf("%w: %s: %s", ErrUnreadableOutput, path, err.Error())
	}

	normalizedSource := xmltree.Normalize(source)
	normalizedCandidate := xmltree.Normalize(candidate)

	result.Report = v.comparator.Compare(normalizedSource, normalizedCandidate)
	if result.Report.IsStructurallyEqual() {
		result.Status = m.Passed
		return output, nil
	}

	result.Status = m.Failed
	result.Diff = unifiedDiff(path, normalizedSource.String(), normalizedCandidate.String())

	return output, nil
}

func (v *verifier) resolve(path m.Path, data []byte) (*xmltree.Document, *models.Binding, error) {
	doc, err := xmltree.Parse(data)
	if err != nil {
		return nil, nil, withFile(err, path)
	}

	binding, err := v.options.Registry.Resolve(path, doc)
	if err != nil {
		return nil, nil, err
	}

	return doc, binding, nil
}

// withFile stamps path on typed errors created without one.
func withFile(err error, path m.Path) error {
	var parseErr *m.ParseError
	if errors.As(err, &parseErr) && parseErr.File == "" {
		parseErr.File = path
	}

	var mismatch *m.ModelMismatchError
	if errors.As(err, &mismatch) && mismatch.File == "" {
		mismatch.File = path
	}

	return err
}

func statusFor(err error) m.FileStatus {
	var (
		parseErr *m.ParseError
		mismatch *m.ModelMismatchError
	)

	switch {
	case errors.As(err, &parseErr):
		return m.ParseFailed
	case errors.As(err, &mismatch):
		return m.ModelMismatch
	default:
		return m.Errored
	}
}

func unifiedDiff(path m.Path, source, candidate string) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(source),
		B:        difflib.SplitLines(candidate),
		FromFile: string(path),
		ToFile:   string(path) + " (round trip)",
		Context:  diffContextLines,
	})
	if err != nil {
		slog.Error("Failed to build diff", "path", path, "error", err)
		return ""
	}

	return text
}
