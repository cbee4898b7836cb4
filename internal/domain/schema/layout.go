// Package schema binds typed, presence-aware data-objects to XML elements.
//
// A data-object is a plain struct that embeds Layout and stores every
// optional field as a model.Optional. A Schema describes which attributes
// and child elements map to which fields. Decoding records the source order
// of attributes and children in the Layout together with any content the
// schema does not map, and encoding replays that order, so a decoded object
// re-encodes to a structurally identical element.
package schema

import (
	"modxml.dev/pkg/modxml/internal/xmltree"
)

// Layout is embedded by every data-object.
type Layout struct {
	decoded    bool
	attrOrder  []string
	elemOrder  []elemSlot
	extraAttrs []xmltree.Attr
	extraElems []*xmltree.Element
	extraText  string
}

// elemSlot is one source child position; extra marks content the schema did not map.
type elemSlot struct {
	name  string
	extra bool
}

func (l *Layout) layout() *Layout { return l }

// Decoded reports whether the object was produced by decoding a document.
func (l *Layout) Decoded() bool { return l.decoded }

// Node is satisfied by any struct embedding Layout.
type Node interface {
	layout() *Layout
}

func (l *Layout) reset() {
	*l = Layout{decoded: true}
}
