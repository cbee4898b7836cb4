package model

import (
	"fmt"
	"strings"
)

// OutputFormat selects a report projection.
type OutputFormat string

// Supported output formats.
const (
	FormatConsole  OutputFormat = "console"
	FormatMarkdown OutputFormat = "markdown"
	FormatCSV      OutputFormat = "csv"
	FormatJSON     OutputFormat = "json"
	FormatHTML     OutputFormat = "html"
)

// OutputFormats lists every supported format.
var OutputFormats = []OutputFormat{FormatConsole, FormatMarkdown, FormatCSV, FormatJSON, FormatHTML}

// ParseOutputFormats converts configured names, ignoring case and
// surrounding blanks. Duplicates are dropped.
func ParseOutputFormats(names []string) ([]OutputFormat, error) {
	seen := make(map[OutputFormat]bool, len(names))
	out := make([]OutputFormat, 0, len(names))

	for _, name := range names {
		format := OutputFormat(strings.ToLower(strings.TrimSpace(name)))
		if !format.Valid() {
			return nil, fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, name)
		}

		if seen[format] {
			continue
		}

		seen[format] = true
		out = append(out, format)
	}

	return out, nil
}

// Valid reports whether f is a supported format.
func (f OutputFormat) Valid() bool {
	for _, known := range OutputFormats {
		if f == known {
			return true
		}
	}

	return false
}

// ModelInfo describes a registered model for listings.
type ModelInfo struct {
	Name    string
	Root    string
	Type    string
	Files   []string
	Aliases []string
	Bound   []string // globs bound by model definitions
}

// Complexity buckets a file by size for adaptation planning.
type Complexity int

// Complexity levels, smallest first.
const (
	Simple Complexity = iota
	Medium
	Complex
	Large
)

const kilobyte = 1024

// ComplexityOf buckets a file of size bytes.
func ComplexityOf(size int64) Complexity {
	switch {
	case size > 1024*kilobyte:
		return Large
	case size > 100*kilobyte:
		return Complex
	case size > 10*kilobyte:
		return Medium
	default:
		return Simple
	}
}

func (c Complexity) String() string {
	switch c {
	case Simple:
		return "simple"
	case Medium:
		return "medium"
	case Complex:
		return "complex"
	case Large:
		return "large"
	default:
		return fmt.Sprintf("complexity(%d)", int(c))
	}
}

// UnadaptedFile is an XML file no registered model is bound to.
type UnadaptedFile struct {
	File          File
	ExpectedModel string // model name the file naming convention maps to
	Complexity    Complexity
}
