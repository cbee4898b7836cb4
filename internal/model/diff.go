package model

// DiffReport is the categorized result of a structural comparison between a
// reference document (A) and a candidate document (B).
//
// "Missing" entries exist in A but not in B, "Extra" entries exist in B but
// not in A. Every entry is prefixed with the element path it belongs to.
type DiffReport struct {
	MissingNodes              []string `json:"missing_nodes"`
	ExtraNodes                []string `json:"extra_nodes"`
	NodeNameDifferences       []string `json:"node_name_differences"`
	MissingAttributes         []string `json:"missing_attributes"`
	ExtraAttributes           []string `json:"extra_attributes"`
	AttributeValueDifferences []string `json:"attribute_value_differences"`
	TextDifferences           []string `json:"text_differences"`
}

// DiffCategory names one list of a DiffReport.
type DiffCategory string

// Report categories in their stable display order.
const (
	CategoryMissingNodes              DiffCategory = "MissingNodes"
	CategoryExtraNodes                DiffCategory = "ExtraNodes"
	CategoryNodeNameDifferences       DiffCategory = "NodeNameDifferences"
	CategoryMissingAttributes         DiffCategory = "MissingAttributes"
	CategoryExtraAttributes           DiffCategory = "ExtraAttributes"
	CategoryAttributeValueDifferences DiffCategory = "AttributeValueDifferences"
	CategoryTextDifferences           DiffCategory = "TextDifferences"
)

// DiffCategories lists every category in display order.
var DiffCategories = []DiffCategory{
	CategoryMissingNodes,
	CategoryExtraNodes,
	CategoryNodeNameDifferences,
	CategoryMissingAttributes,
	CategoryExtraAttributes,
	CategoryAttributeValueDifferences,
	CategoryTextDifferences,
}

// IsStructurallyEqual reports whether every category is empty.
func (r DiffReport) IsStructurallyEqual() bool {
	return r.Count() == 0
}

// Count returns the total number of entries over all categories.
func (r DiffReport) Count() int {
	total := 0
	for _, category := range DiffCategories {
		total += len(r.Entries(category))
	}

	return total
}

// Entries returns the list stored under category.
func (r DiffReport) Entries(category DiffCategory) []string {
	switch category {
	case CategoryMissingNodes:
		return r.MissingNodes
	case CategoryExtraNodes:
		return r.ExtraNodes
	case CategoryNodeNameDifferences:
		return r.NodeNameDifferences
	case CategoryMissingAttributes:
		return r.MissingAttributes
	case CategoryExtraAttributes:
		return r.ExtraAttributes
	case CategoryAttributeValueDifferences:
		return r.AttributeValueDifferences
	case CategoryTextDifferences:
		return r.TextDifferences
	}

	return nil
}

// Prefixed returns a copy of r with every entry prefixed by prefix and ": ".
// It is used to aggregate per-file reports into a batch report.
func (r DiffReport) Prefixed(prefix string) DiffReport {
	apply := func(entries []string) []string {
		if len(entries) == 0 {
			return nil
		}

		out := make([]string, len(entries))
		for i, entry := range entries {
			out[i] = prefix + ": " + entry
		}

		return out
	}

	return DiffReport{
		MissingNodes:              apply(r.MissingNodes),
		ExtraNodes:                apply(r.ExtraNodes),
		NodeNameDifferences:       apply(r.NodeNameDifferences),
		MissingAttributes:         apply(r.MissingAttributes),
		ExtraAttributes:           apply(r.ExtraAttributes),
		AttributeValueDifferences: apply(r.AttributeValueDifferences),
		TextDifferences:           apply(r.TextDifferences),
	}
}

// Merge returns a new report holding the entries of r followed by other.
func (r DiffReport) Merge(other DiffReport) DiffReport {
	join := func(a, b []string) []string {
		if len(a)+len(b) == 0 {
			return nil
		}

		out := make([]string, 0, len(a)+len(b))
		out = append(out, a...)

		return append(out, b...)
	}

	return DiffReport{
		MissingNodes:              join(r.MissingNodes, other.MissingNodes),
		ExtraNodes:                join(r.ExtraNodes, other.ExtraNodes),
		NodeNameDifferences:       join(r.NodeNameDifferences, other.NodeNameDifferences),
		MissingAttributes:         join(r.MissingAttributes, other.MissingAttributes),
		ExtraAttributes:           join(r.ExtraAttributes, other.ExtraAttributes),
		AttributeValueDifferences: join(r.AttributeValueDifferences, other.AttributeValueDifferences),
		TextDifferences:           join(r.TextDifferences, other.TextDifferences),
	}
}
