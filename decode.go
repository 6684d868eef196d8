package embercsv

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// DecodeRecord parses one JSONL line into a record tree. The root must be a
// JSON object; member order is preserved and numbers keep their literal text.
func DecodeRecord(line []byte) (Mapping, error) {
	dec := j.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	m, ok := v.(Mapping)
	if !ok {
		return nil, fmt.Errorf("record root is %s, want mapping", v.Kind())
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after record")
	}
	return m, nil
}

func decodeValue(dec *j.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			return decodeMapping(dec)
		case '[':
			return decodeSequence(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case j.Number:
		return Number(t), nil
	case float64:
		// UseNumber makes this unreachable for well-formed input; kept for
		// decoder implementations that hand back floats anyway.
		return Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case nil:
		return Null{}, nil
	}
	return nil, fmt.Errorf("unexpected token %T", tok)
}

func decodeMapping(dec *j.Decoder) (Mapping, error) {
	m := Mapping{}
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		if d, ok := tok.(j.Delim); ok && d == '}' {
			return m, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, want string", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		m = append(m, Member{Key: key, Value: v})
	}
}

func decodeSequence(dec *j.Decoder) (Sequence, error) {
	s := Sequence{}
	for {
		if !dec.More() {
			// consume the closing bracket
			if _, err := dec.Token(); err != nil {
				if err == io.EOF {
					return nil, io.ErrUnexpectedEOF
				}
				return nil, err
			}
			return s, nil
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		s = append(s, v)
	}
}
