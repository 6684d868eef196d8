package embercsv

import "slices"

// labelFeature is the ground-truth column. It is pinned to the last position
// so the target stays the final column regardless of caller ordering.
const labelFeature = "label"

// Schema is the ordered list of output columns. It is fixed at construction
// and never mutated by conversion calls.
type Schema struct {
	features []string
}

// NewSchema copies the caller's feature names, removing every occurrence of
// "label" and, when the label was present at all, appending a single "label"
// as the final entry.
func NewSchema(features []string) Schema {
	eff := make([]string, 0, len(features))
	hasLabel := false
	for _, f := range features {
		if f == labelFeature {
			hasLabel = true
			continue
		}
		eff = append(eff, f)
	}
	if hasLabel {
		eff = append(eff, labelFeature)
	}
	return Schema{features: eff}
}

// Features returns a copy of the effective column order.
func (s Schema) Features() []string { return slices.Clone(s.features) }

// Len returns the number of output columns.
func (s Schema) Len() int { return len(s.features) }
