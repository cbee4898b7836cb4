package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"modxml.dev/pkg/modxml/internal/controller"
	"modxml.dev/pkg/modxml/internal/domain/models"
	m "modxml.dev/pkg/modxml/internal/model"
	"modxml.dev/pkg/modxml/internal/xmltree"
)

const roundTripFilePerm = 0o644

// CompareArgs contains the arguments for comparing two documents.
type CompareArgs struct {
	A   m.Path
	B   m.Path
	Raw bool // skip normalization
}

// RoundTripArgs contains the arguments for a single-document round trip.
type RoundTripArgs struct {
	Path             m.Path
	ModelDirectories []m.Path
	Strict           bool
	Output           m.Path // where to write the re-serialized document, if set
	Print            bool
}

// DumpArgs contains the arguments for printing a document projection.
type DumpArgs struct {
	Path             m.Path
	ModelDirectories []m.Path
}

// ModelsArgs contains the arguments for listing registered models.
type ModelsArgs struct {
	ModelDirectories []m.Path
}

// UnadaptedArgs contains the arguments for listing files without a model.
type UnadaptedArgs struct {
	Directory        m.Path
	ModelDirectories []m.Path
	Recursive        bool
	Exclude          []string
}

func (w *workflow) Compare(ctx context.Context, args CompareArgs) (m.DiffReport, error) {
	if err := w.Start(ctx, controller.WithInspectMode()); err != nil {
		return m.DiffReport{}, err
	}
	defer w.Close(ctx)

	a, err := w.readDocument(args.A)
	if err != nil {
		return m.DiffReport{}, err
	}

	b, err := w.readDocument(args.B)
	if err != nil {
		return m.DiffReport{}, err
	}

	if !args.Raw {
		a = xmltree.Normalize(a)
		b = xmltree.Normalize(b)
	}

	report := w.comparator.Compare(a, b)

	slog.Debug("Compared documents", "a", args.A, "b", args.B, "differences", report.Count())

	w.DisplayDiffReport(ctx, args.A, args.B, report)

	return report, nil
}

func (w *workflow) readDocument(p m.Path) (*xmltree.Document, error) {
	data, err := w.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}

	doc, err := xmltree.Parse(data)
	if err != nil {
		return nil, withFile(err, p)
	}

	return doc, nil
}

func (w *workflow) RoundTrip(ctx context.Context, args RoundTripArgs) (m.FileResult, error) {
	registry, err := w.loadRegistry(args.ModelDirectories)
	if err != nil {
		return m.FileResult{}, fmt.Errorf("load model definitions: %w", err)
	}

	if err := w.Start(ctx, controller.WithInspectMode()); err != nil {
		return m.FileResult{}, err
	}
	defer w.Close(ctx)

	verifier := NewVerifier(w.SourceFSAdapter, w.comparator, VerifierOptions{
		Registry: registry,
		Strict:   args.Strict,
	})

	out, err := verifier.RoundTrip(ctx, args.Path)
	if err != nil {
		return m.FileResult{}, err
	}

	if args.Output != "" && out.Output != nil {
		if err := w.WriteFile(args.Output, out.Output, roundTripFilePerm); err != nil {
			slog.Error("Failed to write round-trip output", "path", args.Output, "error", err)
			return out.Result, fmt.Errorf("write %s: %w", args.Output, err)
		}
	}

	var printed []byte
	if args.Print {
		printed = out.Output
	}

	w.DisplayRoundTrip(ctx, out.Result, printed)

	return out.Result, nil
}

func (w *workflow) Dump(ctx context.Context, args DumpArgs) error {
	registry, err := w.loadRegistry(args.ModelDirectories)
	if err != nil {
		return fmt.Errorf("load model definitions: %w", err)
	}

	if err := w.Start(ctx, controller.WithInspectMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	verifier := NewVerifier(w.SourceFSAdapter, w.comparator, VerifierOptions{Registry: registry})

	projection, err := verifier.Project(ctx, args.Path)
	if err != nil {
		return err
	}

	return w.DisplayProjection(ctx, projection.Path, projection.Model, projection.Data)
}

func (w *workflow) Models(ctx context.Context, args ModelsArgs) ([]m.ModelInfo, error) {
	registry, err := w.loadRegistry(args.ModelDirectories)
	if err != nil {
		return nil, fmt.Errorf("load model definitions: %w", err)
	}

	var infos []m.ModelInfo

	for _, binding := range registry.Bindings() {
		info := m.ModelInfo{
			Name:    binding.Name,
			Root:    binding.Root,
			Type:    binding.Type,
			Files:   binding.Files,
			Aliases: binding.Aliases,
		}

		for _, def := range registry.Definitions() {
			if bound, ok := registry.Lookup(def.Model); ok && bound == binding {
				info.Bound = append(info.Bound, def.Files...)
			}
		}

		infos = append(infos, info)
	}

	w.DisplayModels(ctx, infos)

	return infos, nil
}

// Unadapted lists the XML files of a directory that no model is bound to,
// judged by file name alone. Largest buckets come first.
func (w *workflow) Unadapted(ctx context.Context, args UnadaptedArgs) ([]m.UnadaptedFile, error) {
	registry, err := w.loadRegistry(args.ModelDirectories)
	if err != nil {
		return nil, fmt.Errorf("load model definitions: %w", err)
	}

	files, err := w.collectFiles(VerifyArgs{
		Directory: args.Directory,
		Recursive: args.Recursive,
		Exclude:   args.Exclude,
	})
	if err != nil {
		return nil, err
	}

	var unadapted []m.UnadaptedFile

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := registry.Resolve(file.FullPath, nil); err == nil {
			continue
		}

		unadapted = append(unadapted, m.UnadaptedFile{
			File:          file,
			ExpectedModel: models.MappedName(string(file.ShortPath)),
			Complexity:    m.ComplexityOf(file.Size),
		})
	}

	sort.SliceStable(unadapted, func(i, j int) bool {
		if unadapted[i].Complexity != unadapted[j].Complexity {
			return unadapted[i].Complexity > unadapted[j].Complexity
		}

		return unadapted[i].File.ShortPath < unadapted[j].File.ShortPath
	})

	slog.Debug("Listed unadapted files", "directory", args.Directory, "files", len(files), "unadapted", len(unadapted))

	w.DisplayUnadapted(ctx, unadapted)

	return unadapted, nil
}
