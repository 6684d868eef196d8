// Package embercsv flattens EMBER JSONL feature records into CSV rows.
//
// Each line of an EMBER dataset file is one JSON object describing the static
// features of a single PE binary. The package decodes each line into an
// ordered record tree, resolves a configured list of feature names against it
// (either by a generic recursive key search or by a specialized extractor for
// section aggregates and data-directory lookups), and emits one CSV row per
// record. Any feature that cannot be resolved to a scalar fails the whole
// record; by default a failed record aborts the conversion and discards the
// partial output.
//
// The usual entry point is Converter:
//
//	conv := embercsv.NewConverter(features, embercsv.Options{Logger: logger})
//	if err := conv.Convert(ctx, "train_features_0.jsonl"); err != nil { ... }
//
// The lower-level pieces (DecodeRecord, Search, Resolve, Projector,
// LineSource) are exported for callers that need to drive extraction
// themselves.
package embercsv
