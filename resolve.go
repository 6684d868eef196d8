package embercsv

// Search walks the record tree depth-first in document order looking for the
// given key. At each mapping it checks every member in turn: a key match wins
// immediately, a mapping value is recursed into, and a sequence value has each
// of its mapping-typed elements recursed into before moving to the next
// member. The first match in this pre-order wins; there is no ambiguity
// detection when the same key occurs at several depths.
func Search(node Value, feature string) (Value, bool) {
	m, ok := node.(Mapping)
	if !ok {
		return nil, false
	}
	for _, mem := range m {
		if mem.Key == feature {
			return mem.Value, true
		}
		switch child := mem.Value.(type) {
		case Mapping:
			if v, ok := Search(child, feature); ok {
				return v, true
			}
		case Sequence:
			for _, el := range child {
				if em, ok := el.(Mapping); ok {
					if v, ok := Search(em, feature); ok {
						return v, true
					}
				}
			}
		}
	}
	return nil, false
}

// extractors maps the specialized feature names to their implementations.
// A specialized name always wins over the generic fallback, even when a field
// of the same name happens to exist verbatim in the record.
var extractors = map[string]func(Mapping, string) (Value, error){
	"sections_mean_entropy":     sectionAggregate(aggMean, sectionFieldEntropy),
	"sections_min_entropy":      sectionAggregate(aggMin, sectionFieldEntropy),
	"sections_max_entropy":      sectionAggregate(aggMax, sectionFieldEntropy),
	"sections_mean_rawsize":     sectionAggregate(aggMean, sectionFieldRawSize),
	"sections_min_rawsize":      sectionAggregate(aggMin, sectionFieldRawSize),
	"sections_max_rawsize":      sectionAggregate(aggMax, sectionFieldRawSize),
	"sections_mean_virtualsize": sectionAggregate(aggMean, sectionFieldVirtualSize),
	"sections_min_virtualsize":  sectionAggregate(aggMin, sectionFieldVirtualSize),
	"sections_max_virtualsize":  sectionAggregate(aggMax, sectionFieldVirtualSize),
	"export_size":               dataDirectory(dirExportTable, dirFieldSize),
	"export_rva":                dataDirectory(dirExportTable, dirFieldRVA),
	"resource_size":             dataDirectory(dirResourceTable, dirFieldSize),
	"debug_size":                dataDirectory(dirDebugTable, dirFieldSize),
	"debug_rva":                 dataDirectory(dirDebugTable, dirFieldRVA),
	"iat_rva":                   dataDirectory(dirImportAddressTable, dirFieldRVA),
}

// Resolve maps one feature name to a value within the record, dispatching to
// a specialized extractor when the name has one and falling back to the
// generic Search otherwise.
func Resolve(rec Mapping, feature string) (Value, error) {
	if fn, ok := extractors[feature]; ok {
		return fn(rec, feature)
	}
	v, ok := Search(rec, feature)
	if !ok {
		return nil, featureIssue(CodeFeatureNotFound, feature, "feature not found in record")
	}
	return v, nil
}
