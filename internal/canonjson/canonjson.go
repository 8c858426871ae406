// Package canonjson produces a canonical JSON encoding of structured values.
//
// Every peer that executes a transaction must write byte-identical state, so
// the encoding cannot depend on field insertion order, map iteration order,
// or how a value was reconstructed. Canonical form sorts object members
// recursively by key (code point order), preserves array element order,
// keeps number literals exactly as given, and emits no insignificant
// whitespace. Encoding is pure: equal values always yield equal bytes.
package canonjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnsupported reports a value the canonical form cannot represent, such
// as a cyclic structure or a non-JSON Go type.
var ErrUnsupported = errors.New("canonjson: unsupported value")

// Marshal encodes v in canonical form.
func Marshal(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return Canonicalize(raw)
}

// Canonicalize rewrites a single JSON document into canonical form. Object
// member order in the input is not significant and is discarded; array
// element order is meaningful and kept.
func Canonicalize(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: more than one top-level value", ErrUnsupported)
	}

	// encoding/json writes map keys in sorted order at every nesting level,
	// and json.Number round-trips the literal untouched.
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return out, nil
}
