package xmltree

import "strings"

// Normalize returns a canonical copy of doc for comparison. Attribute values
// equal to "true" or "false" in any letter case are lowercased. No other value
// is rewritten: numeric formatting differences are kept on purpose. Presence
// and order of attributes and elements are unchanged; doc is not modified.
func Normalize(doc *Document) *Document {
	out := doc.Clone()
	if out == nil || out.Root == nil {
		return out
	}

	normalizeElement(out.Root)

	return out
}

func normalizeElement(e *Element) {
	for i := range e.Attrs {
		e.Attrs[i].Value = NormalizeValue(e.Attrs[i].Value)
	}

	for _, child := range e.Children {
		normalizeElement(child)
	}
}

// NormalizeValue applies the boolean casing rule to a single value.
func NormalizeValue(value string) string {
	switch {
	case strings.EqualFold(value, "true"):
		return "true"
	case strings.EqualFold(value, "false"):
		return "false"
	default:
		return value
	}
}
