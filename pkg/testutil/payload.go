// Package testutil provides utilities for inspecting encoded payloads in
// tests: encoding helpers plus a decoded view that preserves the field order
// of the wire form.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Payload is a decoded JSON object with its top-level field order preserved.
type Payload struct {
	// Names holds the field names in encoding order.
	Names []string
	// Values maps field name to decoded value. Numbers are json.Number.
	Values map[string]interface{}
}

// Encode marshals a payload value to JSON.
func Encode(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	return data, nil
}

// Decode parses a JSON object into a Payload, keeping top-level field order.
func Decode(data []byte) (*Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("payload is not a JSON object, starts with %v", tok)
	}

	payload := &Payload{
		Values: make(map[string]interface{}),
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read field name: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v where field name expected", keyTok)
		}

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to decode field %q: %w", key, err)
		}

		payload.Names = append(payload.Names, key)
		payload.Values[key] = value
	}

	return payload, nil
}

// Roundtrip encodes a value and decodes the result, failing on either error.
func Roundtrip(v interface{}) (*Payload, error) {
	data, err := Encode(v)
	if err != nil {
		return nil, err
	}

	return Decode(data)
}

// Has reports whether the payload carries the named top-level field.
func (p *Payload) Has(name string) bool {
	_, ok := p.Values[name]

	return ok
}

// Field returns the decoded value of the named field and whether it exists.
func (p *Payload) Field(name string) (interface{}, bool) {
	value, ok := p.Values[name]

	return value, ok
}
