package xmltree

import (
	"bytes"
	"io"
	"strings"
)

// Declaration is written at the top of every encoded document.
const Declaration = `<?xml version="1.0" encoding="utf-8"?>`

const indentUnit = "\t"

var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\t", "&#x9;",
		"\n", "&#xA;",
		"\r", "&#xD;",
	)
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\r", "&#xD;",
	)
)

// Encode writes the document as UTF-8 XML with the standard declaration and
// tab indentation. Attribute and child order is preserved.
func (d *Document) Encode(w io.Writer) error {
	_, err := w.Write(d.Bytes())
	return err
}

// Bytes returns the encoded document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer

	buf.WriteString(Declaration)
	buf.WriteByte('\n')

	if d != nil && d.Root != nil {
		writeElement(&buf, d.Root, 0)
	}

	return buf.Bytes()
}

// String returns the encoded document as a string.
func (d *Document) String() string {
	return string(d.Bytes())
}

func writeElement(buf *bytes.Buffer, e *Element, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	buf.WriteString(indent)
	buf.WriteByte('<')
	buf.WriteString(e.Name)

	for _, attr := range e.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(attr.Name)
		buf.WriteString(`="`)
		buf.WriteString(attrEscaper.Replace(attr.Value))
		buf.WriteByte('"')
	}

	switch {
	case len(e.Children) == 0 && e.Text == "":
		buf.WriteString(" />\n")
	case len(e.Children) == 0:
		buf.WriteByte('>')
		buf.WriteString(textEscaper.Replace(e.Text))
		buf.WriteString("</")
		buf.WriteString(e.Name)
		buf.WriteString(">\n")
	default:
		buf.WriteString(">\n")

		// Mixed content: the text position among children is not tracked,
		// so it is written first.
		if strings.TrimSpace(e.Text) != "" {
			buf.WriteString(indent + indentUnit)
			buf.WriteString(textEscaper.Replace(strings.TrimSpace(e.Text)))
			buf.WriteByte('\n')
		}

		for _, child := range e.Children {
			writeElement(buf, child, depth+1)
		}

		buf.WriteString(indent)
		buf.WriteString("</")
		buf.WriteString(e.Name)
		buf.WriteString(">\n")
	}
}
