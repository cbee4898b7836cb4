package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	m "modxml.dev/pkg/modxml/internal/model"
)

// Parse builds a tree from an XML document held in memory.
func Parse(data []byte) (*Document, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader builds a tree from r. Malformed input (unbalanced tags, invalid
// encoding, several roots, text outside the root) yields a *model.ParseError.
func ParseReader(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = true
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *Element
		stack []*Element
	)

	fail := func(err error) (*Document, error) {
		line, _ := decoder.InputPos()
		return nil, &m.ParseError{Line: line, Err: err}
	}

	for {
		// RawToken keeps namespace prefixes as written; balance is checked below.
		token, err := decoder.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fail(err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			element := &Element{Name: qualifiedName(t.Name)}
			for _, attr := range t.Attr {
				element.Attrs = append(element.Attrs, Attr{Name: qualifiedName(attr.Name), Value: attr.Value})
			}

			if len(stack) == 0 {
				if root != nil {
					return fail(fmt.Errorf("second root element <%s>", element.Name))
				}

				root = element
			} else {
				stack[len(stack)-1].AppendChild(element)
			}

			stack = append(stack, element)

		case xml.EndElement:
			name := qualifiedName(t.Name)
			if len(stack) == 0 {
				return fail(fmt.Errorf("unexpected end element </%s>", name))
			}

			top := stack[len(stack)-1]
			if top.Name != name {
				return fail(fmt.Errorf("element <%s> closed by </%s>", top.Name, name))
			}

			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return fail(errors.New("character data outside the root element"))
				}

				continue
			}

			stack[len(stack)-1].Text += string(t)
		}
	}

	if len(stack) > 0 {
		return fail(fmt.Errorf("unexpected end of input inside <%s>", stack[len(stack)-1].Name))
	}

	if root == nil {
		return fail(errors.New("no root element"))
	}

	return &Document{Root: root}, nil
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}

	return name.Space + ":" + name.Local
}
