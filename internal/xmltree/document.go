// Package xmltree is an ordered, presence-preserving XML element tree.
//
// Unlike encoding/xml struct mapping, the tree keeps every attribute that was
// written in the source (including empty ones) in source order, so a document
// can be compared or re-emitted without collapsing "absent" and "empty".
package xmltree

// Attr is a single attribute. Name is the raw qualified name
// (prefix:local when a prefix was written).
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the tree. Text holds the concatenated direct
// character data of the element; comments and processing instructions are
// not kept.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// Document is a parsed XML document with a single root element.
type Document struct {
	Root *Element
}

// NewDocument returns a document rooted at root.
func NewDocument(root *Element) *Document {
	return &Document{Root: root}
}

// Attr returns the value of the named attribute and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}

	return "", false
}

// SetAttr replaces the named attribute or appends it when absent.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}

	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// RemoveAttr deletes the named attribute, reporting whether it existed.
func (e *Element) RemoveAttr(name string) bool {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return true
		}
	}

	return false
}

// Child returns the first child with the given name.
func (e *Element) Child(name string) *Element {
	for _, child := range e.Children {
		if child.Name == name {
			return child
		}
	}

	return nil
}

// ChildrenNamed returns every child with the given name, in order.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element

	for _, child := range e.Children {
		if child.Name == name {
			out = append(out, child)
		}
	}

	return out
}

// AppendChild adds child as the last child and returns it.
func (e *Element) AppendChild(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// Clone returns a deep copy of the element and its subtree.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}

	out := &Element{Name: e.Name, Text: e.Text}

	if len(e.Attrs) > 0 {
		out.Attrs = make([]Attr, len(e.Attrs))
		copy(out.Attrs, e.Attrs)
	}

	if len(e.Children) > 0 {
		out.Children = make([]*Element, len(e.Children))
		for i, child := range e.Children {
			out.Children[i] = child.Clone()
		}
	}

	return out
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}

	return &Document{Root: d.Root.Clone()}
}
