package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"modxml.dev/pkg/modxml/internal/controller"
	m "modxml.dev/pkg/modxml/internal/model"
)

func (w *workflow) Watch(ctx context.Context, args VerifyArgs) error {
	if err := args.Validate(); err != nil {
		return err
	}

	if err := w.requireDirectory(args.Directory); err != nil {
		return fmt.Errorf("xml directory: %w", err)
	}

	registry, err := w.loadRegistry(args.ModelDirectories)
	if err != nil {
		slog.Error("Failed to load model definitions", "directories", args.ModelDirectories, "error", err)
		return fmt.Errorf("load model definitions: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	watched, err := w.addWatchDirs(watcher, args)
	if err != nil {
		slog.Error("Failed to watch directory", "directory", args.Directory, "error", err)
		return fmt.Errorf("watch %s: %w", args.Directory, err)
	}

	if err := w.Start(ctx, controller.WithWatchMode()); err != nil {
		return err
	}
	defer w.Close(context.WithoutCancel(ctx))

	verifier := NewVerifier(w.SourceFSAdapter, w.comparator, VerifierOptions{
		Registry:          registry,
		Strict:            args.Strict,
		FileSizeThreshold: args.FileSizeThreshold,
	})

	w.DisplayRunInfo(ctx, controller.RunInfo{
		Directory: args.Directory,
		Files:     watched,
		Workers:   1,
		Strict:    args.Strict,
	})

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			w.handleWatchEvent(ctx, watcher, verifier, args, event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Warn("Watcher error", "directory", args.Directory, "error", err)
		}
	}
}

// addWatchDirs registers the directory (and its sub-directories when
// recursive) and returns the number of XML files directly visible.
func (w *workflow) addWatchDirs(watcher *fsnotify.Watcher, args VerifyArgs) (int, error) {
	files := 0

	err := w.Walk(args.Directory, args.Recursive, func(p string, entry os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return watcher.Add(p)
		}

		if isXMLFile(p) {
			files++
		}

		return nil
	})

	return files, err
}

func (w *workflow) handleWatchEvent(
	ctx context.Context,
	watcher *fsnotify.Watcher,
	verifier Verifier,
	args VerifyArgs,
	event fsnotify.Event,
) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	info, err := w.FileInfo(m.Path(event.Name))
	if err != nil {
		slog.Debug("Skipping vanished file", "path", event.Name, "error", err)
		return
	}

	if info.IsDir() {
		if args.Recursive && event.Has(fsnotify.Create) {
			if err := watcher.Add(event.Name); err != nil {
				slog.Warn("Failed to watch new directory", "path", event.Name, "error", err)
			}
		}

		return
	}

	if !isXMLFile(event.Name) {
		return
	}

	rel, err := w.RelPath(args.Directory, m.Path(event.Name))
	if err != nil {
		slog.Warn("Failed to resolve relative path", "path", event.Name, "error", err)
		return
	}

	short := m.Path(filepath.ToSlash(string(rel)))
	if excluded(args.Exclude, short) {
		return
	}

	result := verifier.Verify(ctx, m.File{FullPath: m.Path(event.Name), ShortPath: short, Size: info.Size()})

	w.DisplayFileResult(ctx, result)
}
