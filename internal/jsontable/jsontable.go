// Package jsontable reads a JSON document into structured rows. Supported
// shapes: an array of objects (one record per object, columns ordered by
// first appearance of each key), an array of arrays (records without a
// header), a single object (one record), and a stream of root objects
// (JSON Lines). Key order is taken from the token stream, since decoding
// into a Go map would lose it.
package jsontable

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"tabpaste/internal/tabular"
)

// ErrNotTabular reports a JSON document whose root is not an object or an
// array of objects/arrays.
var ErrNotTabular = errors.New("json is not tabular")

// Detect reports whether text plausibly carries a JSON document: the first
// non-space character opens an array or object. Callers still fall back to
// plain-text parsing when Read rejects the input.
func Detect(text string) bool {
	t := strings.TrimSpace(text)
	return strings.HasPrefix(t, "[") || strings.HasPrefix(t, "{")
}

// Parse reads one JSON document from text.
func Parse(text string) (tabular.Rows, error) {
	return Read(strings.NewReader(text))
}

// Read parses one JSON document from r into rows.
func Read(r io.Reader) (tabular.Rows, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return tabular.Rows{}, ErrNotTabular
		}
		return tabular.Rows{}, fmt.Errorf("json: read first token: %w", err)
	}

	d, ok := tok.(json.Delim)
	if !ok {
		return tabular.Rows{}, fmt.Errorf("%w: root is a scalar", ErrNotTabular)
	}

	switch d {
	case '[':
		rows, err := readArray(dec)
		if err != nil {
			return tabular.Rows{}, err
		}
		if err := expectDelim(dec, ']'); err != nil {
			return tabular.Rows{}, err
		}
		return rows, nil

	case '{':
		t := newObjectTable()
		if err := t.walkObject(dec); err != nil {
			return tabular.Rows{}, err
		}
		// Further root objects make this a JSON Lines stream; each one is
		// another record.
		for {
			tok, err := dec.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				return tabular.Rows{}, fmt.Errorf("json: read trailing token: %w", err)
			}
			if d, ok := tok.(json.Delim); !ok || d != '{' {
				return tabular.Rows{}, fmt.Errorf("%w: trailing token %v after object", ErrNotTabular, tok)
			}
			if err := t.walkObject(dec); err != nil {
				return tabular.Rows{}, err
			}
		}
		return t.rows(), nil
	}
	return tabular.Rows{}, fmt.Errorf("%w: unexpected delimiter %q", ErrNotTabular, d)
}

// readArray consumes array elements after '[': all objects or all arrays.
func readArray(dec *json.Decoder) (tabular.Rows, error) {
	objects := newObjectTable()
	var arrays [][]string
	kind := byte(0)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return tabular.Rows{}, fmt.Errorf("json: read array element: %w", err)
		}
		d, ok := tok.(json.Delim)
		if !ok {
			return tabular.Rows{}, fmt.Errorf("%w: array element is a scalar", ErrNotTabular)
		}

		switch d {
		case '{':
			if kind == 'a' {
				return tabular.Rows{}, fmt.Errorf("%w: mixed objects and arrays", ErrNotTabular)
			}
			kind = 'o'
			if err := objects.walkObject(dec); err != nil {
				return tabular.Rows{}, err
			}

		case '[':
			if kind == 'o' {
				return tabular.Rows{}, fmt.Errorf("%w: mixed objects and arrays", ErrNotTabular)
			}
			kind = 'a'
			var rec []string
			for dec.More() {
				cell, err := readCell(dec)
				if err != nil {
					return tabular.Rows{}, err
				}
				rec = append(rec, cell)
			}
			if err := expectDelim(dec, ']'); err != nil {
				return tabular.Rows{}, err
			}
			arrays = append(arrays, rec)

		default:
			return tabular.Rows{}, fmt.Errorf("%w: unexpected delimiter %q", ErrNotTabular, d)
		}
	}

	if kind == 'a' {
		return tabular.Rows{Records: arrays}, nil
	}
	return objects.rows(), nil
}

// objectTable accumulates object records while tracking column order by
// first key appearance.
type objectTable struct {
	columns []string
	index   map[string]int
	records []map[string]string
}

func newObjectTable() *objectTable {
	return &objectTable{index: make(map[string]int)}
}

// walkObject consumes one object's fields after '{' and records it.
func (t *objectTable) walkObject(dec *json.Decoder) error {
	rec := make(map[string]string)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("json: read object key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("json: object key not a string (got %T)", keyTok)
		}
		cell, err := readCell(dec)
		if err != nil {
			return err
		}
		if _, seen := t.index[key]; !seen {
			t.index[key] = len(t.columns)
			t.columns = append(t.columns, key)
		}
		rec[key] = cell
	}
	if err := expectDelim(dec, '}'); err != nil {
		return err
	}
	t.records = append(t.records, rec)
	return nil
}

func (t *objectTable) rows() tabular.Rows {
	if len(t.records) == 0 {
		return tabular.Rows{}
	}
	records := make([][]string, len(t.records))
	for i, rec := range t.records {
		row := make([]string, len(t.columns))
		for k, cell := range rec {
			row[t.index[k]] = cell
		}
		records[i] = row
	}
	return tabular.Rows{Header: t.columns, Records: records, HasHeader: true}
}

// readCell reads the next JSON value and flattens it to a raw cell:
// scalars keep their text (numbers keep their exact digits), null becomes
// the empty cell, and nested composites are re-encoded compactly.
func readCell(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("json: read value: %w", err)
	}
	switch v := tok.(type) {
	case json.Delim:
		val, err := materialize(dec, v)
		if err != nil {
			return "", err
		}
		b, err := json.Marshal(val)
		if err != nil {
			return "", fmt.Errorf("json: encode nested value: %w", err)
		}
		return string(b), nil
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case json.Number:
		return v.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// materialize builds a Go value for a composite whose opening delimiter
// has already been read. Only nested cells take this path, so buffering
// is acceptable.
func materialize(dec *json.Decoder, d json.Delim) (any, error) {
	switch d {
	case '{':
		m := make(map[string]any)
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("json: read nested key: %w", err)
			}
			k, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("json: nested key not a string (got %T)", kt)
			}
			vt, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("json: read nested value: %w", err)
			}
			var v any
			if dd, ok := vt.(json.Delim); ok {
				v, err = materialize(dec, dd)
				if err != nil {
					return nil, err
				}
			} else {
				v = vt
			}
			m[k] = v
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, err
		}
		return m, nil

	case '[':
		var arr []any
		for dec.More() {
			vt, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("json: read nested element: %w", err)
			}
			var v any
			if dd, ok := vt.(json.Delim); ok {
				v, err = materialize(dec, dd)
				if err != nil {
					return nil, err
				}
			} else {
				v = vt
			}
			arr = append(arr, v)
		}
		if err := expectDelim(dec, ']'); err != nil {
			return nil, err
		}
		return arr, nil
	}
	return nil, fmt.Errorf("json: unexpected delimiter %q", d)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("json: read %q: %w", want, err)
	}
	if tok != want {
		return fmt.Errorf("json: expected %q, got %v", want, tok)
	}
	return nil
}
