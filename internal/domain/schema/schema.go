package schema

import (
	"errors"
	"strconv"
	"strings"

	m "modxml.dev/pkg/modxml/internal/model"
	"modxml.dev/pkg/modxml/internal/xmltree"
)

// ErrNotBool is returned for a boolean field holding anything but true/false.
var ErrNotBool = errors.New("expected true or false")

// Schema maps one element kind onto the data-object type T.
type Schema[T any] struct {
	name     string
	layoutOf func(*T) *Layout
	attrs    []attrField[T]
	elems    []elemField[T]
	text     func(*T) *m.Optional[string]
}

type attrField[T any] struct {
	name    string
	decode  func(obj *T, value string) error
	encode  func(obj *T) (string, bool)
	project func(obj *T) (any, bool)
}

type elemField[T any] struct {
	name string
	// decode stores child into obj. It returns false when the field cannot
	// take the element, which is then preserved as unmapped content.
	decode  func(obj *T, child *xmltree.Element, st *decodeState, path string) (bool, error)
	encode  func(obj *T) []*xmltree.Element
	project func(obj *T) (any, bool)
}

// New declares a schema for elements called name decoded into T.
func New[T any, P interface {
	*T
	Node
}](name string) *Schema[T] {
	return &Schema[T]{
		name:     name,
		layoutOf: func(obj *T) *Layout { return P(obj).layout() },
	}
}

// Name returns the element name the schema binds.
func (s *Schema[T]) Name() string {
	return s.name
}

// Attr binds a string attribute.
func (s *Schema[T]) Attr(name string, get func(*T) *m.Optional[string]) *Schema[T] {
	s.attrs = append(s.attrs, attrField[T]{
		name: name,
		decode: func(obj *T, value string) error {
			get(obj).Set(value)
			return nil
		},
		encode: func(obj *T) (string, bool) {
			return get(obj).Get()
		},
		project: func(obj *T) (any, bool) {
			return get(obj).Get()
		},
	})

	return s
}

// Bool binds a boolean attribute. Decoding accepts true/false in any letter
// case; encoding writes lowercase.
func (s *Schema[T]) Bool(name string, get func(*T) *m.Optional[bool]) *Schema[T] {
	s.attrs = append(s.attrs, attrField[T]{
		name: name,
		decode: func(obj *T, value string) error {
			b, err := parseBool(value)
			if err != nil {
				return err
			}

			get(obj).Set(b)

			return nil
		},
		encode: func(obj *T) (string, bool) {
			b, ok := get(obj).Get()
			if !ok {
				return "", false
			}

			return strconv.FormatBool(b), true
		},
		project: func(obj *T) (any, bool) {
			return get(obj).Get()
		},
	})

	return s
}

// Number binds a numeric attribute kept as its source literal.
func (s *Schema[T]) Number(name string, get func(*T) *m.Optional[m.Number]) *Schema[T] {
	s.attrs = append(s.attrs, attrField[T]{
		name: name,
		decode: func(obj *T, value string) error {
			get(obj).Set(m.Number(value))
			return nil
		},
		encode: func(obj *T) (string, bool) {
			n, ok := get(obj).Get()
			return string(n), ok
		},
		project: func(obj *T) (any, bool) {
			n, ok := get(obj).Get()
			return string(n), ok
		},
	})

	return s
}

// Text binds the character data of the element.
func (s *Schema[T]) Text(get func(*T) *m.Optional[string]) *Schema[T] {
	s.text = get
	return s
}

// One binds a single optional child element. A second occurrence in the
// source is kept as unmapped content.
func One[T, C any](s *Schema[T], child *Schema[C], get func(*T) *m.Optional[*C]) *Schema[T] {
	s.elems = append(s.elems, elemField[T]{
		name: child.name,
		decode: func(obj *T, el *xmltree.Element, st *decodeState, path string) (bool, error) {
			field := get(obj)
			if field.IsPresent() {
				return false, nil
			}

			value := new(C)
			if err := child.decodeInto(value, el, st, path); err != nil {
				return false, err
			}

			field.Set(value)

			return true, nil
		},
		encode: func(obj *T) []*xmltree.Element {
			value, ok := get(obj).Get()
			if !ok {
				return nil
			}

			if value == nil {
				value = new(C)
			}

			return []*xmltree.Element{child.encode(value)}
		},
		project: func(obj *T) (any, bool) {
			value, ok := get(obj).Get()
			if !ok {
				return nil, false
			}

			if value == nil {
				return map[string]any{}, true
			}

			return child.project(value), true
		},
	})

	return s
}

// Many binds a repeated child element that has no wrapper.
func Many[T, C any](s *Schema[T], child *Schema[C], get func(*T) *[]*C) *Schema[T] {
	s.elems = append(s.elems, elemField[T]{
		name: child.name,
		decode: func(obj *T, el *xmltree.Element, st *decodeState, path string) (bool, error) {
			value := new(C)
			if err := child.decodeInto(value, el, st, path); err != nil {
				return false, err
			}

			items := get(obj)
			*items = append(*items, value)

			return true, nil
		},
		encode: func(obj *T) []*xmltree.Element {
			return encodeItems(child, *get(obj))
		},
		project: func(obj *T) (any, bool) {
			items := *get(obj)
			if len(items) == 0 {
				return nil, false
			}

			return projectItems(child, items), true
		},
	})

	return s
}

// Wrapped binds a collection held in a wrapper element:
// <wrapper><item/>...</wrapper>. An absent Optional omits the wrapper, a
// present empty slice writes an empty wrapper.
//
// A wrapper carrying attributes, text or other children is not mapped and is
// preserved as unmapped content.
func Wrapped[T, C any](s *Schema[T], wrapper string, child *Schema[C], get func(*T) *m.Optional[[]*C]) *Schema[T] {
	s.elems = append(s.elems, elemField[T]{
		name: wrapper,
		decode: func(obj *T, el *xmltree.Element, st *decodeState, path string) (bool, error) {
			field := get(obj)
			if field.IsPresent() || !plainWrapper(el, child.name) {
				return false, nil
			}

			items := make([]*C, 0, len(el.Children))
			for i, itemEl := range el.Children {
				value := new(C)
				if err := child.decodeInto(value, itemEl, st, indexedPath(path, child.name, i)); err != nil {
					return false, err
				}

				items = append(items, value)
			}

			field.Set(items)

			return true, nil
		},
		encode: func(obj *T) []*xmltree.Element {
			items, ok := get(obj).Get()
			if !ok {
				return nil
			}

			return []*xmltree.Element{{Name: wrapper, Children: encodeItems(child, items)}}
		},
		project: func(obj *T) (any, bool) {
			items, ok := get(obj).Get()
			if !ok {
				return nil, false
			}

			return projectItems(child, items), true
		},
	})

	return s
}

func plainWrapper(el *xmltree.Element, item string) bool {
	if len(el.Attrs) > 0 || strings.TrimSpace(el.Text) != "" {
		return false
	}

	for _, child := range el.Children {
		if child.Name != item {
			return false
		}
	}

	return true
}

func encodeItems[C any](child *Schema[C], items []*C) []*xmltree.Element {
	out := make([]*xmltree.Element, 0, len(items))

	for _, item := range items {
		if item == nil {
			continue
		}

		out = append(out, child.encode(item))
	}

	return out
}

func projectItems[C any](child *Schema[C], items []*C) []any {
	out := make([]any, 0, len(items))

	for _, item := range items {
		if item == nil {
			continue
		}

		out = append(out, child.project(item))
	}

	return out
}

func parseBool(value string) (bool, error) {
	switch {
	case strings.EqualFold(value, "true"):
		return true, nil
	case strings.EqualFold(value, "false"):
		return false, nil
	default:
		return false, ErrNotBool
	}
}

func (s *Schema[T]) attrField(name string) *attrField[T] {
	for i := range s.attrs {
		if s.attrs[i].name == name {
			return &s.attrs[i]
		}
	}

	return nil
}

func (s *Schema[T]) elemField(name string) *elemField[T] {
	for i := range s.elems {
		if s.elems[i].name == name {
			return &s.elems[i]
		}
	}

	return nil
}
