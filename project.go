package embercsv

import "fmt"

// Row is one projected record: scalar values in schema column order.
type Row []Value

// Strings renders the row for a tabular sink.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = FormatScalar(v)
	}
	return out
}

// Projector projects records onto a fixed schema. It holds no per-record
// state, so one Projector may serve any number of records, including from
// concurrent goroutines as long as each record tree is its own.
type Projector struct {
	schema Schema
}

// NewProjector builds a Projector for the given feature names. The schema is
// label-reordered once here and never changes afterwards.
func NewProjector(features []string) *Projector {
	return &Projector{schema: NewSchema(features)}
}

// Schema returns the effective schema.
func (p *Projector) Schema() Schema { return p.schema }

// Header returns the output column names in order.
func (p *Projector) Header() []string { return p.schema.Features() }

// Project resolves every schema feature against the record and assembles one
// row. Any unresolved or non-scalar feature fails the whole record; no
// partial row is ever returned.
func (p *Projector) Project(rec Mapping) (Row, error) {
	row := make(Row, 0, len(p.schema.features))
	for _, name := range p.schema.features {
		v, err := Resolve(rec, name)
		if err != nil {
			return nil, err
		}
		if !IsScalar(v) {
			return nil, Issues{{
				Feature: name,
				Code:    CodeNonScalarFeature,
				Message: fmt.Sprintf("feature resolved to %s, want scalar", v.Kind()),
				Record:  -1,
			}}
		}
		row = append(row, v)
	}
	return row, nil
}
