package embercsv

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeFeatureNotFound means the generic search exhausted the record tree
	// without a match.
	CodeFeatureNotFound = "feature_not_found"
	// CodeNonScalarFeature means the feature resolved to a mapping or
	// sequence, which can never become a CSV cell.
	CodeNonScalarFeature = "non_scalar_feature"
	// CodeSectionsMissing means no "sections" key exists anywhere in the
	// record. Present-but-empty is valid and aggregates to zero instead.
	CodeSectionsMissing = "sections_missing"
	// CodeSectionMalformed means a section entry is not a mapping or lacks a
	// numeric sub-field required by an aggregate.
	CodeSectionMalformed = "section_malformed"
	// CodeDatadirectoryMissing means no "datadirectories" key exists anywhere
	// in the record.
	CodeDatadirectoryMissing = "datadirectory_missing"
	// CodeDatadirectoryMalformed means a fixed index is out of range or an
	// expected sub-key is absent within a present data-directory table.
	CodeDatadirectoryMalformed = "datadirectory_malformed"
	// CodeMalformedRecord means an input line could not be decoded into a
	// record at all.
	CodeMalformedRecord = "malformed_record"
)

// Issue represents a single extraction failure.
type Issue struct {
	Feature string // Feature name being resolved; empty for line-level failures.
	Code    string // One of the codes listed above.
	Message string
	Record  int64 // 1-based input line number (-1 when unknown).
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"index":6, "len":5}) for
	// diagnostics and observability.
	Params map[string]any
}

// Issues is a collection of extraction failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. feature_not_found at md5 (record 42)
		if it.Feature != "" {
			fmt.Fprintf(b, "%s at %s", it.Code, it.Feature)
		} else {
			b.WriteString(it.Code)
		}
		if it.Record > 0 {
			fmt.Fprintf(b, " (record %d)", it.Record)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// featureIssue builds a single-issue error for the given feature.
func featureIssue(code, feature, msg string) Issues {
	return Issues{{Feature: feature, Code: code, Message: msg, Record: -1}}
}
