package assert

import (
	"testing"

	"github.com/pavelpascari/typedpayload/pkg/testutil"
)

func decode(t *testing.T, data string) *testutil.Payload {
	t.Helper()

	payload, err := testutil.Decode([]byte(data))
	if err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}

	return payload
}

func TestExactFields(t *testing.T) {
	payload := decode(t, `{"id":1,"name":"Widget"}`)

	ExactFields(t, payload, "id", "name")
}

func TestFieldOrder(t *testing.T) {
	payload := decode(t, `{"id":1,"name":"Widget","price":"9.99"}`)

	FieldOrder(t, payload, "id", "name", "price")
}

func TestFieldEquals(t *testing.T) {
	payload := decode(t, `{"id":1,"name":"Widget","price":9.99}`)

	FieldEquals(t, payload, "id", 1)
	FieldEquals(t, payload, "name", "Widget")
	FieldEquals(t, payload, "price", 9.99)
}

func TestNoField(t *testing.T) {
	payload := decode(t, `{"id":1}`)

	NoField(t, payload, "secret")
}

func TestFailuresAreReported(t *testing.T) {
	payload := decode(t, `{"id":1,"extra":true}`)

	recorder := &testing.T{}
	ExactFields(recorder, payload, "id")

	if !recorder.Failed() {
		t.Error("expected ExactFields to fail on an unexpected field")
	}
}
