package embercsv

import "strconv"

// Kind discriminates the node variants of a decoded record tree.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindMapping
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	}
	return "unknown"
}

// Value is one node of a record tree: a scalar (Null, Bool, Number, String),
// a Mapping, or a Sequence. The closed set of implementations makes "what
// counts as scalar" a type-level fact rather than a runtime convention.
type Value interface {
	Kind() Kind
}

// Null is the JSON null literal. It is a scalar and renders as an empty cell.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// Bool is a JSON boolean.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

// Number holds the literal JSON number text so that integer formatting
// survives to the output untouched.
type Number string

func (Number) Kind() Kind { return KindNumber }

// Float64 interprets the literal as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// String is a JSON string.
type String string

func (String) Kind() Kind { return KindString }

// Member is one key/value entry of a Mapping.
type Member struct {
	Key   string
	Value Value
}

// Mapping is a JSON object with its members in document order. Preserving
// order keeps the first-match-wins search deterministic across runs.
type Mapping []Member

func (Mapping) Kind() Kind { return KindMapping }

// Get returns the value of the first member with the given key. It does not
// recurse; see Search for the recursive lookup.
func (m Mapping) Get(key string) (Value, bool) {
	for _, mem := range m {
		if mem.Key == key {
			return mem.Value, true
		}
	}
	return nil, false
}

// Sequence is a JSON array.
type Sequence []Value

func (Sequence) Kind() Kind { return KindSequence }

// IsScalar reports whether v may appear in an output cell.
func IsScalar(v Value) bool {
	switch v.Kind() {
	case KindMapping, KindSequence:
		return false
	}
	return true
}

// FormatScalar renders a scalar for the CSV sink. Numbers keep their literal
// text; null becomes the empty cell. Composite values must be rejected before
// rendering, so they format as empty here.
func FormatScalar(v Value) string {
	switch s := v.(type) {
	case Bool:
		if s {
			return "true"
		}
		return "false"
	case Number:
		return string(s)
	case String:
		return string(s)
	}
	return ""
}

// floatNumber converts an aggregate result into a Number using the shortest
// decimal form.
func floatNumber(f float64) Number {
	return Number(strconv.FormatFloat(f, 'f', -1, 64))
}
