package schema

import (
	"errors"
	"strconv"
	"strings"

	m "modxml.dev/pkg/modxml/internal/model"
	"modxml.dev/pkg/modxml/internal/xmltree"
)

// ErrNilObject is returned when encoding a nil data-object.
var ErrNilObject = errors.New("nil data-object")

// Decoded is the outcome of a successful decode.
type Decoded[T any] struct {
	Value *T
	// Unmapped lists the paths of source content the schema does not bind.
	// That content is preserved and written back on encode.
	Unmapped []string
}

// Option adjusts decoding.
type Option func(*decodeState)

// Strict makes decoding fail with *model.UnmappedError when the document
// holds content the schema does not bind.
func Strict() Option {
	return func(st *decodeState) {
		st.strict = true
	}
}

type decodeState struct {
	strict   bool
	unmapped []string
}

// Decode maps doc onto a new T.
func Decode[T any](s *Schema[T], doc *xmltree.Document, opts ...Option) (Decoded[T], error) {
	var st decodeState
	for _, opt := range opts {
		opt(&st)
	}

	if doc == nil || doc.Root == nil {
		return Decoded[T]{}, &m.ModelMismatchError{}
	}

	if doc.Root.Name != s.name {
		return Decoded[T]{}, &m.ModelMismatchError{Root: doc.Root.Name}
	}

	value := new(T)
	if err := s.decodeInto(value, doc.Root, &st, "/"+s.name); err != nil {
		return Decoded[T]{}, err
	}

	if st.strict && len(st.unmapped) > 0 {
		return Decoded[T]{}, &m.UnmappedError{Paths: st.unmapped}
	}

	return Decoded[T]{Value: value, Unmapped: st.unmapped}, nil
}

// Unmarshal parses data and decodes it into a new T.
func Unmarshal[T any](s *Schema[T], data []byte, opts ...Option) (Decoded[T], error) {
	doc, err := xmltree.Parse(data)
	if err != nil {
		return Decoded[T]{}, err
	}

	return Decode(s, doc, opts...)
}

// Encode builds the document for obj.
func Encode[T any](s *Schema[T], obj *T) (*xmltree.Document, error) {
	if obj == nil {
		return nil, ErrNilObject
	}

	return xmltree.NewDocument(s.encode(obj)), nil
}

// Marshal encodes obj to UTF-8 XML bytes.
func Marshal[T any](s *Schema[T], obj *T) ([]byte, error) {
	doc, err := Encode(s, obj)
	if err != nil {
		return nil, err
	}

	return doc.Bytes(), nil
}

func indexedPath(parent, name string, index int) string {
	return parent + "/" + name + "[" + strconv.Itoa(index) + "]"
}

func (s *Schema[T]) decodeInto(obj *T, el *xmltree.Element, st *decodeState, path string) error {
	lay := s.layoutOf(obj)
	lay.reset()

	for _, attr := range el.Attrs {
		lay.attrOrder = append(lay.attrOrder, attr.Name)

		field := s.attrField(attr.Name)
		if field == nil {
			lay.extraAttrs = append(lay.extraAttrs, attr)
			st.unmapped = append(st.unmapped, path+"/@"+attr.Name)

			continue
		}

		if err := field.decode(obj, attr.Value); err != nil {
			return &m.FieldError{Path: path, Field: attr.Name, Value: attr.Value, Err: err}
		}
	}

	seen := make(map[string]int)

	for _, child := range el.Children {
		childPath := indexedPath(path, child.Name, seen[child.Name])
		seen[child.Name]++

		if field := s.elemField(child.Name); field != nil {
			ok, err := field.decode(obj, child, st, childPath)
			if err != nil {
				return err
			}

			if ok {
				lay.elemOrder = append(lay.elemOrder, elemSlot{name: child.Name})
				continue
			}
		}

		lay.elemOrder = append(lay.elemOrder, elemSlot{name: child.Name, extra: true})
		lay.extraElems = append(lay.extraElems, child.Clone())
		st.unmapped = append(st.unmapped, childPath)
	}

	if strings.TrimSpace(el.Text) != "" {
		if s.text != nil {
			s.text(obj).Set(el.Text)
		} else {
			lay.extraText = el.Text
			st.unmapped = append(st.unmapped, path+"/text()")
		}
	}

	return nil
}

func (s *Schema[T]) encode(obj *T) *xmltree.Element {
	lay := s.layoutOf(obj)
	el := &xmltree.Element{Name: s.name}

	el.Attrs = s.encodeAttrs(obj, lay)
	el.Children = s.encodeChildren(obj, lay)

	if s.text != nil {
		if text, ok := s.text(obj).Get(); ok {
			el.Text = text
		}
	} else {
		el.Text = lay.extraText
	}

	return el
}

func (s *Schema[T]) encodeAttrs(obj *T, lay *Layout) []xmltree.Attr {
	values := make(map[string]string, len(s.attrs))

	for _, field := range s.attrs {
		if value, ok := field.encode(obj); ok {
			values[field.name] = value
		}
	}

	extras := make(map[string]string, len(lay.extraAttrs))
	for _, attr := range lay.extraAttrs {
		extras[attr.Name] = attr.Value
	}

	out := make([]xmltree.Attr, 0, len(values)+len(extras))
	emitted := make(map[string]bool, cap(out))

	emit := func(name string) {
		if emitted[name] {
			return
		}

		if value, ok := values[name]; ok {
			out = append(out, xmltree.Attr{Name: name, Value: value})
			emitted[name] = true

			return
		}

		if value, ok := extras[name]; ok {
			out = append(out, xmltree.Attr{Name: name, Value: value})
			emitted[name] = true
		}
	}

	for _, name := range lay.attrOrder {
		emit(name)
	}

	for _, field := range s.attrs {
		emit(field.name)
	}

	for _, attr := range lay.extraAttrs {
		emit(attr.Name)
	}

	return out
}

func (s *Schema[T]) encodeChildren(obj *T, lay *Layout) []*xmltree.Element {
	queues := make(map[string][]*xmltree.Element, len(s.elems))
	total := len(lay.extraElems)

	for _, field := range s.elems {
		queues[field.name] = field.encode(obj)
		total += len(queues[field.name])
	}

	extras := make(map[string][]*xmltree.Element)
	for _, extra := range lay.extraElems {
		extras[extra.Name] = append(extras[extra.Name], extra.Clone())
	}

	out := make([]*xmltree.Element, 0, total)

	pop := func(from map[string][]*xmltree.Element, name string) bool {
		q := from[name]
		if len(q) == 0 {
			return false
		}

		out = append(out, q[0])
		from[name] = q[1:]

		return true
	}

	for _, slot := range lay.elemOrder {
		if slot.extra {
			pop(extras, slot.name)
		} else {
			pop(queues, slot.name)
		}
	}

	for _, field := range s.elems {
		out = append(out, queues[field.name]...)
		queues[field.name] = nil
	}

	for _, extra := range lay.extraElems {
		pop(extras, extra.Name)
	}

	return out
}
