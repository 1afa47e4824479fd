package typedpayload

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog product as loaded from the store.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

// User represents a customer account as loaded from the store.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// FullName returns the user's display name, computed from the name parts on
// every call. It is never stored and is not writable through this package.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// OrderStatus identifies the fulfillment state of an order. The set of valid
// values is owned by the caller; this package treats the status as opaque and
// never checks membership.
type OrderStatus string

// Common order statuses.
const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusShipped   OrderStatus = "shipped"
	StatusCancelled OrderStatus = "cancelled"
)

// Order represents a customer order with its user and line items already
// resolved by the caller.
type Order struct {
	OrderID   uuid.UUID
	CreatedAt time.Time
	Status    OrderStatus
	User      User
	Items     []OrderItem
}

// TotalPrice returns the sum of the line item subtotals, recomputed on every
// call. An order with no items totals zero.
func (o Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// OrderItem represents a single line of an order, referencing exactly one
// product.
type OrderItem struct {
	Product  Product
	Quantity int
}

// Subtotal returns quantity times the referenced product's current price.
// The value is derived fresh on every call; there are no price snapshots.
func (it OrderItem) Subtotal() decimal.Decimal {
	return it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}
