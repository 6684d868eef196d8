package embercsv_test

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/reoring/embercsv"
)

func TestProject_ExportSizeAndLabel(t *testing.T) {
	entries := make([]string, 13)
	for i := range entries {
		entries[i] = fmt.Sprintf(`{"size":%d,"virtual_address":%d}`, 10+i, i+1)
	}
	rec := mustRecord(t, `{"datadirectories":[`+strings.Join(entries, ",")+`],"label":1}`)
	p := embercsv.NewProjector([]string{"export_size", "label"})
	row, err := p.Project(rec)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if want := []string{"10", "1"}; !reflect.DeepEqual(row.Strings(), want) {
		t.Fatalf("row = %v, want %v", row.Strings(), want)
	}
}

func TestProject_EmptySectionsRow(t *testing.T) {
	rec := mustRecord(t, `{"sections":[]}`)
	p := embercsv.NewProjector([]string{"sections_mean_entropy"})
	row, err := p.Project(rec)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if want := []string{"0"}; !reflect.DeepEqual(row.Strings(), want) {
		t.Fatalf("row = %v, want %v", row.Strings(), want)
	}
}

func TestProject_MaxEntropyRow(t *testing.T) {
	rec := mustRecord(t, `{"sections":[{"entropy":1.0},{"entropy":3.5}]}`)
	p := embercsv.NewProjector([]string{"sections_max_entropy"})
	row, err := p.Project(rec)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if want := []string{"3.5"}; !reflect.DeepEqual(row.Strings(), want) {
		t.Fatalf("row = %v, want %v", row.Strings(), want)
	}
}

func TestProject_NotFoundFailsWholeRecord(t *testing.T) {
	rec := mustRecord(t, `{"md5":"abc"}`)
	p := embercsv.NewProjector([]string{"md5", "nonexistent_feature"})
	row, err := p.Project(rec)
	if row != nil {
		t.Fatalf("got partial row %v", row)
	}
	iss, ok := embercsv.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Code != embercsv.CodeFeatureNotFound || iss[0].Feature != "nonexistent_feature" {
		t.Fatalf("issue = %+v", iss[0])
	}
}

func TestProject_CompositeFeatureFails(t *testing.T) {
	rec := mustRecord(t, `{"sections":[{"entropy":1.0}]}`)
	p := embercsv.NewProjector([]string{"sections"})
	_, err := p.Project(rec)
	iss, ok := embercsv.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Code != embercsv.CodeNonScalarFeature || iss[0].Feature != "sections" {
		t.Fatalf("issue = %+v", iss[0])
	}
}

func TestProject_HeaderMatchesEffectiveSchema(t *testing.T) {
	p := embercsv.NewProjector([]string{"label", "md5", "machine"})
	if want := []string{"md5", "machine", "label"}; !reflect.DeepEqual(p.Header(), want) {
		t.Fatalf("Header() = %v, want %v", p.Header(), want)
	}
}

func TestProject_ColumnOrderFollowsSchema(t *testing.T) {
	rec := mustRecord(t, `{"label":0,"machine":332,"md5":"abc"}`)
	p := embercsv.NewProjector([]string{"label", "md5", "machine"})
	row, err := p.Project(rec)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if want := []string{"abc", "332", "0"}; !reflect.DeepEqual(row.Strings(), want) {
		t.Fatalf("row = %v, want %v", row.Strings(), want)
	}
}

func TestProject_NullIsAScalarCell(t *testing.T) {
	rec := mustRecord(t, `{"md5":null,"label":1}`)
	p := embercsv.NewProjector([]string{"md5", "label"})
	row, err := p.Project(rec)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if want := []string{"", "1"}; !reflect.DeepEqual(row.Strings(), want) {
		t.Fatalf("row = %v, want %v", row.Strings(), want)
	}
}
