// Package model defines the data structures shared by the round-trip verifier.
package model

// Path represents a file system path.
type Path string

// File represents a source XML document discovered on disk.
type File struct {
	FullPath  Path
	ShortPath Path // relative to the scanned directory, slash separated
	Size      int64
}

// ModelDefinition binds file-name globs to a registered model name. It is
// loaded from the YAML files in the configured model directories.
type ModelDefinition struct {
	Model  string   `yaml:"model"`
	Files  []string `yaml:"files"`
	Source Path     `yaml:"-"`
}
