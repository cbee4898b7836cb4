package domain

import (
	"fmt"
	"strconv"
	"strings"

	m "modxml.dev/pkg/modxml/internal/model"
	"modxml.dev/pkg/modxml/internal/xmltree"
)

// Comparator diffs two document trees. A is the reference, B the candidate:
// "missing" entries exist only in A and "extra" entries only in B.
type Comparator interface {
	Compare(a, b *xmltree.Document) m.DiffReport
	CompareBytes(a, b []byte) (m.DiffReport, error)
}

type comparator struct{}

// NewComparator returns the structural comparator.
func NewComparator() Comparator {
	return &comparator{}
}

// CompareBytes parses both inputs with the same parser and compares them.
// Parse failures are returned as errors, never as diff entries.
func (c *comparator) CompareBytes(a, b []byte) (m.DiffReport, error) {
	docA, err := xmltree.Parse(a)
	if err != nil {
		return m.DiffReport{}, fmt.Errorf("parse A: %w", err)
	}

	docB, err := xmltree.Parse(b)
	if err != nil {
		return m.DiffReport{}, fmt.Errorf("parse B: %w", err)
	}

	return c.Compare(docA, docB), nil
}

func (c *comparator) Compare(a, b *xmltree.Document) m.DiffReport {
	var report m.DiffReport

	rootA, rootB := rootOf(a), rootOf(b)

	switch {
	case rootA == nil && rootB == nil:
		return report
	case rootB == nil:
		report.MissingNodes = append(report.MissingNodes, "/"+rootA.Name+" (missing in B)")
		return report
	case rootA == nil:
		report.ExtraNodes = append(report.ExtraNodes, "/"+rootB.Name+" (missing in A)")
		return report
	case rootA.Name != rootB.Name:
		report.NodeNameDifferences = append(report.NodeNameDifferences,
			fmt.Sprintf("/: A=%s, B=%s", rootA.Name, rootB.Name))

		return report
	}

	compareElement(&report, "/"+rootA.Name, rootA, rootB)

	return report
}

func rootOf(doc *xmltree.Document) *xmltree.Element {
	if doc == nil {
		return nil
	}

	return doc.Root
}

func compareElement(report *m.DiffReport, path string, a, b *xmltree.Element) {
	compareAttributes(report, path, a, b)
	compareText(report, path, a, b)
	compareChildren(report, path, a, b)
}

func compareAttributes(report *m.DiffReport, path string, a, b *xmltree.Element) {
	for _, attr := range a.Attrs {
		value, ok := b.Attr(attr.Name)
		if !ok {
			report.MissingAttributes = append(report.MissingAttributes,
				fmt.Sprintf("%s/@%s (missing in B)", path, attr.Name))

			continue
		}

		if value != attr.Value {
			report.AttributeValueDifferences = append(report.AttributeValueDifferences,
				fmt.Sprintf("%s@%s: A=%s, B=%s", path, attr.Name, attr.Value, value))
		}
	}

	for _, attr := range b.Attrs {
		if _, ok := a.Attr(attr.Name); !ok {
			report.ExtraAttributes = append(report.ExtraAttributes,
				fmt.Sprintf("%s/@%s (missing in A)", path, attr.Name))
		}
	}
}

func compareText(report *m.DiffReport, path string, a, b *xmltree.Element) {
	textA, textB := strings.TrimSpace(a.Text), strings.TrimSpace(b.Text)
	if textA != textB {
		report.TextDifferences = append(report.TextDifferences,
			fmt.Sprintf("%s: A text='%s', B text='%s'", path, textA, textB))
	}
}

type placedChild struct {
	element *xmltree.Element
	path    string
}

// compareChildren pairs the k-th occurrence of a name in A with the k-th in B
// and recurses. Children left over on both sides are paired in document order
// as node-name differences; the rest are missing or extra nodes.
func compareChildren(report *m.DiffReport, path string, a, b *xmltree.Element) {
	byName := make(map[string][]*xmltree.Element)
	for _, child := range b.Children {
		byName[child.Name] = append(byName[child.Name], child)
	}

	paired := make(map[*xmltree.Element]bool, len(b.Children))
	seenA := make(map[string]int)

	var leftoverA []placedChild

	for _, child := range a.Children {
		k := seenA[child.Name]
		seenA[child.Name]++

		childPath := path + "/" + child.Name + "[" + strconv.Itoa(k) + "]"

		if candidates := byName[child.Name]; k < len(candidates) {
			paired[candidates[k]] = true
			compareElement(report, childPath, child, candidates[k])

			continue
		}

		leftoverA = append(leftoverA, placedChild{element: child, path: childPath})
	}

	seenB := make(map[string]int)

	var leftoverB []placedChild

	for _, child := range b.Children {
		k := seenB[child.Name]
		seenB[child.Name]++

		if paired[child] {
			continue
		}

		leftoverB = append(leftoverB, placedChild{
			element: child,
			path:    path + "/" + child.Name + "[" + strconv.Itoa(k) + "]",
		})
	}

	n := min(len(leftoverA), len(leftoverB))

	for i := range n {
		ca, cb := leftoverA[i], leftoverB[i]

		report.NodeNameDifferences = append(report.NodeNameDifferences,
			fmt.Sprintf("%s: A=%s, B=%s", ca.path, ca.element.Name, cb.element.Name))
		compareAttributes(report, ca.path, ca.element, cb.element)
		compareText(report, ca.path, ca.element, cb.element)
	}

	for _, child := range leftoverA[n:] {
		report.MissingNodes = append(report.MissingNodes, child.path+" (missing in B)")
	}

	for _, child := range leftoverB[n:] {
		report.ExtraNodes = append(report.ExtraNodes, child.path+" (missing in A)")
	}
}
