// Package models holds the concrete data-objects for Bannerlord module XML
// files and the registry that maps a file to its model.
package models

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"modxml.dev/pkg/modxml/internal/domain/schema"
	m "modxml.dev/pkg/modxml/internal/model"
	"modxml.dev/pkg/modxml/internal/xmltree"
)

// ErrUnknownModel is returned for a model definition naming no registered model.
var ErrUnknownModel = errors.New("unknown model")

// Header carries the attributes found on every <base> root.
type Header struct {
	XMLNSXsi m.Optional[string]
	XMLNSXsd m.Optional[string]
	Type     m.Optional[string]
}

func baseRoot[T any, P interface {
	*T
	schema.Node
}](header func(*T) *Header) *schema.Schema[T] {
	return schema.New[T, P]("base").
		Attr("xmlns:xsi", func(o *T) *m.Optional[string] { return &header(o).XMLNSXsi }).
		Attr("xmlns:xsd", func(o *T) *m.Optional[string] { return &header(o).XMLNSXsd }).
		Attr("type", func(o *T) *m.Optional[string] { return &header(o).Type })
}

// Result is a decoded and re-encoded document.
type Result struct {
	Document *xmltree.Document
	Unmapped []string
}

// Codec is a schema with its data-object type erased.
type Codec interface {
	// RoundTrip decodes doc into the data-object and encodes it again.
	RoundTrip(doc *xmltree.Document, opts ...schema.Option) (Result, error)
	// Project decodes doc and returns its clean projection.
	Project(doc *xmltree.Document) (map[string]any, error)
}

type codec[T any] struct {
	schema *schema.Schema[T]
}

func (c codec[T]) RoundTrip(doc *xmltree.Document, opts ...schema.Option) (Result, error) {
	decoded, err := schema.Decode(c.schema, doc, opts...)
	if err != nil {
		return Result{}, err
	}

	out, err := schema.Encode(c.schema, decoded.Value)
	if err != nil {
		return Result{}, err
	}

	return Result{Document: out, Unmapped: decoded.Unmapped}, nil
}

func (c codec[T]) Project(doc *xmltree.Document) (map[string]any, error) {
	decoded, err := schema.Decode(c.schema, doc)
	if err != nil {
		return nil, err
	}

	return schema.Project(c.schema, decoded.Value), nil
}

// Binding is a registered model.
type Binding struct {
	Name    string
	Root    string
	Type    string   // expected root type attribute
	Files   []string // conventional file-name globs
	Aliases []string
	Codec   Codec
}

func bind[T any](name, typ string, s *schema.Schema[T], files []string, aliases ...string) *Binding {
	return &Binding{
		Name:    name,
		Root:    s.Name(),
		Type:    typ,
		Files:   files,
		Aliases: aliases,
		Codec:   codec[T]{schema: s},
	}
}

var defaultRegistry = NewRegistry(
	bind("BannerIcons", "banner_icons", BannerIconsSchema, []string{"banner_icons.xml"}),
	bind("CombatParameters", "combat_parameters", CombatParametersSchema, []string{"combat_parameters.xml"}),
	bind("ItemModifiers", "", ItemModifiersSchema, []string{"item_modifiers.xml"}),
	bind("MovementSets", "", MovementSetsSchema, []string{"movement_sets.xml"}),
	bind("PhysicsMaterials", "physics_materials", PhysicsMaterialsSchema, []string{"physics_materials.xml"}),
	bind("Skins", "skin", SkinsSchema, []string{"skins.xml"}),
	bind("LanguageStrings", "string", LanguageStringsSchema,
		[]string{"std_*.xml", "module_strings.xml", "*_strings.xml"}, "LanguageBase"),
)

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry
}

// Registry resolves files to models.
type Registry struct {
	bindings    []*Binding
	byName      map[string]*Binding
	definitions []m.ModelDefinition
}

// NewRegistry indexes bindings by name and alias.
func NewRegistry(bindings ...*Binding) *Registry {
	r := &Registry{byName: make(map[string]*Binding, len(bindings))}

	for _, b := range bindings {
		r.bindings = append(r.bindings, b)
		r.byName[strings.ToLower(b.Name)] = b

		for _, alias := range b.Aliases {
			r.byName[strings.ToLower(alias)] = b
		}
	}

	sort.Slice(r.bindings, func(i, j int) bool { return r.bindings[i].Name < r.bindings[j].Name })

	return r
}

// Bindings returns the registered models sorted by name.
func (r *Registry) Bindings() []*Binding {
	out := make([]*Binding, len(r.bindings))
	copy(out, r.bindings)

	return out
}

// Definitions returns the model definitions attached to the registry.
func (r *Registry) Definitions() []m.ModelDefinition {
	return r.definitions
}

// Lookup finds a model by name or alias, ignoring case.
func (r *Registry) Lookup(name string) (*Binding, bool) {
	b, ok := r.byName[strings.ToLower(name)]
	return b, ok
}

// WithDefinitions returns a copy of r that consults defs first.
func (r *Registry) WithDefinitions(defs []m.ModelDefinition) (*Registry, error) {
	for _, def := range defs {
		if _, ok := r.Lookup(def.Model); !ok {
			return nil, fmt.Errorf("%w %q in %s", ErrUnknownModel, def.Model, def.Source)
		}

		for _, pattern := range def.Files {
			if _, err := filepath.Match(pattern, ""); err != nil {
				return nil, fmt.Errorf("model %s in %s: bad pattern %q: %w", def.Model, def.Source, pattern, err)
			}
		}
	}

	out := *r
	out.definitions = append(append([]m.ModelDefinition(nil), r.definitions...), defs...)

	return &out, nil
}

// Resolve picks the model for file. Model definitions win, then the file
// naming convention, then the document root when it is unambiguous.
func (r *Registry) Resolve(file m.Path, doc *xmltree.Document) (*Binding, error) {
	base := filepath.Base(string(file))

	for _, def := range r.definitions {
		if matchAny(def.Files, base) {
			if b, ok := r.Lookup(def.Model); ok {
				return b, nil
			}
		}
	}

	if b, ok := r.Lookup(MappedName(base)); ok {
		return b, nil
	}

	for _, b := range r.bindings {
		if matchAny(b.Files, base) {
			return b, nil
		}
	}

	if doc == nil || doc.Root == nil {
		return nil, &m.ModelMismatchError{File: file}
	}

	typ, _ := doc.Root.Attr("type")

	var found *Binding

	for _, b := range r.bindings {
		if b.Root != doc.Root.Name || (b.Type != "" && b.Type != typ) {
			continue
		}

		if found != nil {
			return nil, &m.ModelMismatchError{File: file, Root: doc.Root.Name}
		}

		found = b
	}

	if found == nil {
		return nil, &m.ModelMismatchError{File: file, Root: doc.Root.Name}
	}

	return found, nil
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}

	return false
}
