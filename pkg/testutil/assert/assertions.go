// Package assert provides assertion functions for encoded payloads with
// detailed error reporting and proper Go testing conventions.
package assert

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/pavelpascari/typedpayload/pkg/testutil"
)

// ExactFields verifies the payload carries exactly the named top-level
// fields, in any order, with no extras.
func ExactFields(t *testing.T, p *testutil.Payload, names ...string) {
	t.Helper()

	expected := make(map[string]bool, len(names))
	for _, name := range names {
		expected[name] = true
		if !p.Has(name) {
			t.Errorf("Missing field:\n  Expected: %q\n  Actual fields: %v", name, p.Names)
		}
	}

	for _, name := range p.Names {
		if !expected[name] {
			t.Errorf("Unexpected field:\n  Found: %q\n  Expected fields: %v", name, names)
		}
	}
}

// FieldOrder verifies the payload's top-level fields appear in exactly the
// given order.
func FieldOrder(t *testing.T, p *testutil.Payload, names ...string) {
	t.Helper()

	if !reflect.DeepEqual(p.Names, names) {
		t.Errorf("Field order mismatch:\n  Expected: %v\n  Actual:   %v", names, p.Names)
	}
}

// FieldEquals verifies a top-level field has the expected decoded value.
// Numeric values decode as json.Number, so pass the wire form as a string
// via Number for comparisons.
func FieldEquals(t *testing.T, p *testutil.Payload, name string, expected interface{}) {
	t.Helper()

	actual, ok := p.Field(name)
	if !ok {
		t.Errorf("Missing field:\n  Expected: %q\n  Actual fields: %v", name, p.Names)

		return
	}

	if !reflect.DeepEqual(normalize(actual), normalize(expected)) {
		t.Errorf("Field %q mismatch:\n  Expected: %#v\n  Actual:   %#v", name, expected, actual)
	}
}

// NoField verifies the payload does not carry the named top-level field.
func NoField(t *testing.T, p *testutil.Payload, name string) {
	t.Helper()

	if p.Has(name) {
		value, _ := p.Field(name)
		t.Errorf("Unexpected field:\n  Found: %q = %#v", name, value)
	}
}

// normalize collapses json.Number and other fmt.Stringer-style numerics to
// comparable strings so callers can compare against plain literals.
func normalize(v interface{}) interface{} {
	switch value := v.(type) {
	case fmt.Stringer:
		return value.String()
	case int:
		return fmt.Sprintf("%d", value)
	case int64:
		return fmt.Sprintf("%d", value)
	case float64:
		return fmt.Sprintf("%v", value)
	default:
		return v
	}
}
