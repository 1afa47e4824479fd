package typedpayload

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductPayload is the client-facing view of a Product. It carries exactly
// these five fields; struct order is wire order.
type ProductPayload struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// UserPayload is the client-facing view of a User. FullName is derived and
// read-only.
type UserPayload struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// OrderItemPayload is the client-facing view of an order line. ProductName
// and ProductPrice are projected through the item's product reference;
// ProductPrice is rendered with exactly two fractional digits.
type OrderItemPayload struct {
	ProductName  string          `json:"product_name"`
	ProductPrice string          `json:"product_price"`
	Quantity     int             `json:"quantity"`
	ItemSubtotal decimal.Decimal `json:"item_subtotal"`
}

// OrderPayload is the client-facing view of an Order. Username and Email are
// projected through the order's user (Username is the display name, not a
// login handle). TotalPrice is the decimal sum of the item subtotals.
type OrderPayload struct {
	OrderID    uuid.UUID          `json:"order_id"`
	CreatedAt  time.Time          `json:"created_at"`
	Username   string             `json:"username"`
	Email      string             `json:"email"`
	Status     OrderStatus        `json:"status"`
	Items      []OrderItemPayload `json:"items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

// ProductInfoPayload wraps a product listing with caller-supplied aggregates.
// Count and MaxPrice are typically computed over the full collection and are
// not cross-checked against the products slice. MaxPrice is a float and must
// not be relied on where exact precision matters.
type ProductInfoPayload struct {
	Products []ProductPayload `json:"products"`
	Count    int              `json:"count"`
	MaxPrice float64          `json:"max_price"`
}
