package embercsv

import "fmt"

// Data-directory indices follow the PE optional-header layout as emitted by
// the EMBER feature extractor (LIEF order): 0 export, 1 import, 2 resource,
// 3 exception, 4 certificate, 5 base relocation, 6 debug, 7 architecture,
// 8 global pointer, 9 TLS, 10 load config, 11 bound import, 12 IAT,
// 13 delay import, 14 CLR header. A mismatch with the record producer is a
// silent-correctness bug, so these stay named constants and the layout is
// pinned by a contract test against a known-good record.
const (
	dirExportTable        = 0
	dirResourceTable      = 2
	dirDebugTable         = 6
	dirImportAddressTable = 12
)

// Per-entry sub-fields of a data directory.
const (
	dirFieldSize = "size"
	dirFieldRVA  = "virtual_address"
)

// dataDirectory builds an extractor that reads one field of the fixed-index
// entry of the record's "datadirectories" table. An empty table is valid and
// yields 0.0; an out-of-range index or missing sub-key fails the extraction.
func dataDirectory(index int, field string) func(Mapping, string) (Value, error) {
	return func(rec Mapping, feature string) (Value, error) {
		node, ok := Search(rec, "datadirectories")
		if !ok {
			return nil, featureIssue(CodeDatadirectoryMissing, feature, `"datadirectories" not found in record`)
		}
		seq, ok := node.(Sequence)
		if !ok {
			return nil, featureIssue(CodeDatadirectoryMalformed, feature, `"datadirectories" is not a sequence`)
		}
		if len(seq) == 0 {
			return floatNumber(0), nil
		}
		if index >= len(seq) {
			return nil, Issues{{
				Feature: feature,
				Code:    CodeDatadirectoryMalformed,
				Message: fmt.Sprintf("data directory %d out of range (table has %d entries)", index, len(seq)),
				Record:  -1,
				Params:  map[string]any{"index": index, "len": len(seq)},
			}}
		}
		entry, ok := seq[index].(Mapping)
		if !ok {
			return nil, Issues{{
				Feature: feature,
				Code:    CodeDatadirectoryMalformed,
				Message: fmt.Sprintf("data directory %d is %s, want mapping", index, seq[index].Kind()),
				Record:  -1,
				Params:  map[string]any{"index": index},
			}}
		}
		v, ok := entry.Get(field)
		if !ok {
			return nil, Issues{{
				Feature: feature,
				Code:    CodeDatadirectoryMalformed,
				Message: fmt.Sprintf("data directory %d has no %q", index, field),
				Record:  -1,
				Params:  map[string]any{"index": index, "field": field},
			}}
		}
		return v, nil
	}
}
