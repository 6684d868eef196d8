package embercsv_test

import (
	"testing"

	"github.com/reoring/embercsv"
)

func TestSearch_TopLevel(t *testing.T) {
	rec := mustRecord(t, `{"md5":"abc","machine":332}`)
	v, ok := embercsv.Search(rec, "md5")
	if !ok || v != embercsv.String("abc") {
		t.Fatalf("Search(md5) = %v, %v", v, ok)
	}
}

func TestSearch_PreOrderFirstMatchWins(t *testing.T) {
	// The nested "x" under the first member is encountered before the
	// top-level "x" that comes later in document order.
	rec := mustRecord(t, `{"outer":{"x":1},"x":2}`)
	v, ok := embercsv.Search(rec, "x")
	if !ok || v != embercsv.Number("1") {
		t.Fatalf("Search(x) = %v, %v; want nested 1", v, ok)
	}

	// With the scalar member first, it wins instead.
	rec = mustRecord(t, `{"x":2,"outer":{"x":1}}`)
	v, ok = embercsv.Search(rec, "x")
	if !ok || v != embercsv.Number("2") {
		t.Fatalf("Search(x) = %v, %v; want top-level 2", v, ok)
	}
}

func TestSearch_ContinuesPastFailedBranch(t *testing.T) {
	rec := mustRecord(t, `{"a":{"deep":{"deeper":1}},"b":[{"c":3}],"target":4}`)
	v, ok := embercsv.Search(rec, "target")
	if !ok || v != embercsv.Number("4") {
		t.Fatalf("Search(target) = %v, %v", v, ok)
	}
}

func TestSearch_RecursesIntoSequenceMappings(t *testing.T) {
	rec := mustRecord(t, `{"list":[1,"two",{"inner":{"hit":9}}]}`)
	v, ok := embercsv.Search(rec, "hit")
	if !ok || v != embercsv.Number("9") {
		t.Fatalf("Search(hit) = %v, %v", v, ok)
	}
}

func TestSearch_NotFound(t *testing.T) {
	rec := mustRecord(t, `{"a":{"b":[{"c":1}]}}`)
	if _, ok := embercsv.Search(rec, "missing"); ok {
		t.Fatalf("Search(missing) found something")
	}
}

func TestResolve_FallbackNotFound(t *testing.T) {
	rec := mustRecord(t, `{"a":1}`)
	_, err := embercsv.Resolve(rec, "nonexistent_feature")
	iss, ok := embercsv.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Code != embercsv.CodeFeatureNotFound || iss[0].Feature != "nonexistent_feature" {
		t.Fatalf("issue = %+v", iss[0])
	}
}

func TestResolve_SpecializedWinsOverVerbatimField(t *testing.T) {
	// The record carries a literal "debug_size" field, but the specialized
	// extractor semantics must win: entry 6's size.
	rec := mustRecord(t, `{
		"debug_size": 999,
		"datadirectories": [
			{"size":1,"virtual_address":11},{"size":2,"virtual_address":12},
			{"size":3,"virtual_address":13},{"size":4,"virtual_address":14},
			{"size":5,"virtual_address":15},{"size":6,"virtual_address":16},
			{"size":7,"virtual_address":17},{"size":8,"virtual_address":18},
			{"size":9,"virtual_address":19},{"size":10,"virtual_address":20},
			{"size":11,"virtual_address":21},{"size":12,"virtual_address":22},
			{"size":13,"virtual_address":23},{"size":14,"virtual_address":24},
			{"size":15,"virtual_address":25}
		]
	}`)
	v, err := embercsv.Resolve(rec, "debug_size")
	if err != nil {
		t.Fatalf("Resolve(debug_size): %v", err)
	}
	if v != embercsv.Number("7") {
		t.Fatalf("debug_size = %v, want 7 (entry 6 size)", v)
	}
}

func TestResolve_GenericReturnsComposite(t *testing.T) {
	// Resolve itself does not enforce scalarity; the projector does.
	rec := mustRecord(t, `{"sections_like":{"a":1}}`)
	v, err := embercsv.Resolve(rec, "sections_like")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if v.Kind() != embercsv.KindMapping {
		t.Fatalf("kind = %s, want mapping", v.Kind())
	}
}
