package typedpayload_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pavelpascari/typedpayload/pkg/testutil"
	"github.com/pavelpascari/typedpayload/pkg/testutil/assert"
	"github.com/pavelpascari/typedpayload/pkg/typedpayload"
	"github.com/shopspring/decimal"
)

// These tests pin the wire shape of every payload: exact field sets and
// declaration-order encoding.

func TestProductPayloadWireShape(t *testing.T) {
	tr := typedpayload.NewTransformer()
	payload := tr.Product(typedpayload.Product{
		ID:          1,
		Name:        "Widget",
		Description: "A widget",
		Price:       decimal.RequireFromString("9.99"),
		Stock:       5,
	})

	decoded, err := testutil.Roundtrip(payload)
	if err != nil {
		t.Fatalf("failed to round-trip payload: %v", err)
	}

	assert.ExactFields(t, decoded, "id", "name", "description", "price", "stock")
	assert.FieldOrder(t, decoded, "id", "name", "description", "price", "stock")
	assert.FieldEquals(t, decoded, "id", 1)
	assert.FieldEquals(t, decoded, "name", "Widget")
	assert.FieldEquals(t, decoded, "description", "A widget")
	assert.FieldEquals(t, decoded, "price", "9.99")
	assert.FieldEquals(t, decoded, "stock", 5)
}

func TestUserPayloadWireShape(t *testing.T) {
	tr := typedpayload.NewTransformer()
	payload := tr.User(typedpayload.User{
		ID:        7,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})

	decoded, err := testutil.Roundtrip(payload)
	if err != nil {
		t.Fatalf("failed to round-trip payload: %v", err)
	}

	assert.ExactFields(t, decoded, "id", "full_name", "email")
	assert.FieldEquals(t, decoded, "full_name", "Ada Lovelace")
}

func TestOrderItemPayloadWireShape(t *testing.T) {
	tr := typedpayload.NewTransformer()
	payload := tr.OrderItem(typedpayload.OrderItem{
		Product: typedpayload.Product{
			Name:  "Widget",
			Price: decimal.RequireFromString("10"),
		},
		Quantity: 2,
	})

	decoded, err := testutil.Roundtrip(payload)
	if err != nil {
		t.Fatalf("failed to round-trip payload: %v", err)
	}

	assert.ExactFields(t, decoded, "product_name", "product_price", "quantity", "item_subtotal")
	assert.FieldEquals(t, decoded, "product_price", "10.00")
	assert.FieldEquals(t, decoded, "quantity", 2)
}

func TestOrderPayloadWireShape(t *testing.T) {
	tr := typedpayload.NewTransformer()
	payload := tr.Order(typedpayload.Order{
		OrderID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Status:  typedpayload.StatusPaid,
		User: typedpayload.User{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
		},
	})

	decoded, err := testutil.Roundtrip(payload)
	if err != nil {
		t.Fatalf("failed to round-trip payload: %v", err)
	}

	assert.ExactFields(t, decoded,
		"order_id", "created_at", "username", "email", "status", "items", "total_price")
	assert.FieldOrder(t, decoded,
		"order_id", "created_at", "username", "email", "status", "items", "total_price")
	assert.FieldEquals(t, decoded, "username", "Ada Lovelace")
	assert.FieldEquals(t, decoded, "status", "paid")
	assert.FieldEquals(t, decoded, "total_price", "0")
	assert.NoField(t, decoded, "user")
}

func TestProductInfoPayloadWireShape(t *testing.T) {
	tr := typedpayload.NewTransformer()
	payload := tr.ProductInfo(nil, 0, 0)

	decoded, err := testutil.Roundtrip(payload)
	if err != nil {
		t.Fatalf("failed to round-trip payload: %v", err)
	}

	assert.ExactFields(t, decoded, "products", "count", "max_price")
	assert.FieldEquals(t, decoded, "count", 0)
	assert.FieldEquals(t, decoded, "max_price", 0.0)
}
