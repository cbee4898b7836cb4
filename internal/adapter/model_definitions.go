package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "modxml.dev/pkg/modxml/internal/model"
)

// ErrInvalidDefinition is returned for a definition entry without a model
// name or without file patterns.
var ErrInvalidDefinition = errors.New("invalid model definition")

// DefinitionStore loads model definition files.
type DefinitionStore interface {
	// LoadDefinitions reads every *.yaml and *.yml file directly inside dir.
	LoadDefinitions(dir m.Path) ([]m.ModelDefinition, error)
}

type definitionsFile struct {
	Models []m.ModelDefinition `yaml:"models"`
}

// YAMLDefinitionStore reads definitions through a SourceFSAdapter.
type YAMLDefinitionStore struct {
	fs SourceFSAdapter
}

// NewYAMLDefinitionStore returns a store backed by fs.
func NewYAMLDefinitionStore(fs SourceFSAdapter) *YAMLDefinitionStore {
	return &YAMLDefinitionStore{fs: fs}
}

// LoadDefinitions returns the definitions of dir in file-name order.
func (s *YAMLDefinitionStore) LoadDefinitions(dir m.Path) ([]m.ModelDefinition, error) {
	info, err := s.fs.FileInfo(dir)
	if err != nil {
		return nil, fmt.Errorf("model directory %s: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("model directory %s: not a directory", dir)
	}

	var files []string

	err = s.fs.Walk(dir, false, func(path string, entry os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !entry.IsDir() && (ext == ".yaml" || ext == ".yml") {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan model directory %s: %w", dir, err)
	}

	sort.Strings(files)

	var definitions []m.ModelDefinition

	for _, file := range files {
		loaded, err := s.loadFile(m.Path(file))
		if err != nil {
			return nil, err
		}

		definitions = append(definitions, loaded...)
	}

	return definitions, nil
}

func (s *YAMLDefinitionStore) loadFile(path m.Path) ([]m.ModelDefinition, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model definitions %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var parsed definitionsFile
	if err := decoder.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse model definitions %s: %w", path, err)
	}

	for i := range parsed.Models {
		def := &parsed.Models[i]
		def.Source = path

		if strings.TrimSpace(def.Model) == "" || len(def.Files) == 0 {
			return nil, fmt.Errorf("%w: %s entry %d needs a model and at least one file pattern",
				ErrInvalidDefinition, path, i+1)
		}
	}

	return parsed.Models, nil
}
