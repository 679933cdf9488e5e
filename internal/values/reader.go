// Package values decodes the JSON input values the CLI validates.
package values

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	json "github.com/goccy/go-json"
)

// Reader decodes a stream of whitespace-separated JSON values. Numbers are
// kept as json.Number so that large or precise literals reach the schema
// unchanged.
type Reader struct {
	dec   *json.Decoder
	index int
}

// NewReader constructs a Reader over r.
func NewReader(r io.Reader) *Reader {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Reader{dec: dec}
}

// Next returns the next value. It returns (nil, io.EOF) when the stream is
// exhausted. A JSON null is returned as nil.
func (r *Reader) Next() (any, error) {
	var v any
	if err := r.dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("value #%d: %w", r.index+1, err)
	}
	r.index++
	return v, nil
}

// ReadAll reads every remaining value.
func (r *Reader) ReadAll() ([]any, error) {
	var out []any
	for v, err := range r.All() {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// All iterates the remaining values. Iteration stops after the first error,
// which is yielded with a nil value.
func (r *Reader) All() iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		for {
			v, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Parse decodes exactly one JSON value from s.
func Parse(s string) (any, error) {
	r := NewReader(strings.NewReader(s))
	v, err := r.Next()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty value")
	}
	if err != nil {
		return nil, err
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after value %q", s)
	}
	return v, nil
}
