package embercsv

import (
	"fmt"
	"math"
)

// Per-section sub-fields as produced by the EMBER feature extractor: entropy,
// raw (on-disk) size and virtual (in-memory) size.
const (
	sectionFieldEntropy     = "entropy"
	sectionFieldRawSize     = "size"
	sectionFieldVirtualSize = "vsize"
)

type aggregate int

const (
	aggMean aggregate = iota
	aggMin
	aggMax
)

// sectionAggregate builds an extractor that combines one numeric sub-field
// across every entry of the record's "sections" collection. An empty
// collection is valid and aggregates to 0.0; a missing collection or a broken
// entry fails the extraction.
func sectionAggregate(agg aggregate, field string) func(Mapping, string) (Value, error) {
	return func(rec Mapping, feature string) (Value, error) {
		node, ok := Search(rec, "sections")
		if !ok {
			return nil, featureIssue(CodeSectionsMissing, feature, `"sections" not found in record`)
		}
		seq, ok := node.(Sequence)
		if !ok {
			return nil, featureIssue(CodeSectionMalformed, feature, `"sections" is not a sequence`)
		}
		if len(seq) == 0 {
			return floatNumber(0), nil
		}
		var sum float64
		minv := math.Inf(1)
		maxv := math.Inf(-1)
		for i, el := range seq {
			em, ok := el.(Mapping)
			if !ok {
				return nil, Issues{{
					Feature: feature,
					Code:    CodeSectionMalformed,
					Message: fmt.Sprintf("section %d is %s, want mapping", i, el.Kind()),
					Record:  -1,
					Params:  map[string]any{"index": i},
				}}
			}
			v, ok := Search(em, field)
			if !ok {
				return nil, Issues{{
					Feature: feature,
					Code:    CodeSectionMalformed,
					Message: fmt.Sprintf("%q not found in section %d", field, i),
					Record:  -1,
					Params:  map[string]any{"index": i, "field": field},
				}}
			}
			n, ok := v.(Number)
			if !ok {
				return nil, Issues{{
					Feature: feature,
					Code:    CodeSectionMalformed,
					Message: fmt.Sprintf("%q of section %d is %s, want number", field, i, v.Kind()),
					Record:  -1,
					Params:  map[string]any{"index": i, "field": field},
				}}
			}
			f, err := n.Float64()
			if err != nil {
				return nil, Issues{{
					Feature: feature,
					Code:    CodeSectionMalformed,
					Message: fmt.Sprintf("%q of section %d: %v", field, i, err),
					Record:  -1,
					Cause:   err,
					Params:  map[string]any{"index": i, "field": field},
				}}
			}
			sum += f
			if f < minv {
				minv = f
			}
			if f > maxv {
				maxv = f
			}
		}
		switch agg {
		case aggMin:
			return floatNumber(minv), nil
		case aggMax:
			return floatNumber(maxv), nil
		}
		return floatNumber(sum / float64(len(seq))), nil
	}
}
