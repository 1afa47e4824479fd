// Package typedpayload converts e-commerce domain records into flat,
// client-facing payload structs and validates inbound write candidates.
// It never touches storage or transport: callers hand it already-materialized
// records and encode the resulting payloads however they like. All methods
// are pure and safe for concurrent use.
package typedpayload

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// productPriceScale is the number of fractional digits used when rendering a
// projected product price. Prices are assumed pre-validated upstream to at
// most 10 significant digits.
const productPriceScale = 2

// Transformer maps domain records to payloads and validates write
// candidates.
type Transformer struct {
	validate *validator.Validate
}

// Option configures a Transformer during construction.
type Option func(*Transformer)

// WithValidator sets a shared validator instance, e.g. one carrying custom
// rules registered by the application.
func WithValidator(validate *validator.Validate) Option {
	return func(tr *Transformer) {
		tr.validate = validate
	}
}

// NewTransformer creates a Transformer. Without options it uses a fresh
// validator instance.
func NewTransformer(opts ...Option) *Transformer {
	tr := &Transformer{}

	for _, opt := range opts {
		opt(tr)
	}

	if tr.validate == nil {
		tr.validate = validator.New()
	}

	return tr
}

// Product builds the client-facing view of a product. Values are copied
// verbatim.
func (tr *Transformer) Product(p Product) ProductPayload {
	return ProductPayload{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
	}
}

// User builds the client-facing view of a user. FullName is derived from the
// record at build time.
func (tr *Transformer) User(u User) UserPayload {
	return UserPayload{
		ID:       u.ID,
		FullName: u.FullName(),
		Email:    u.Email,
	}
}

// OrderItem builds the client-facing view of an order line. Name and price
// are read through the item's product reference, so the payload always
// reflects the product's current state.
func (tr *Transformer) OrderItem(it OrderItem) OrderItemPayload {
	return OrderItemPayload{
		ProductName:  it.Product.Name,
		ProductPrice: it.Product.Price.StringFixed(productPriceScale),
		Quantity:     it.Quantity,
		ItemSubtotal: it.Subtotal(),
	}
}

// Order builds the client-facing view of an order, projecting the user's
// display name and email and nesting one OrderItemPayload per line item.
// TotalPrice is summed in decimal arithmetic and is zero for an order with
// no items. Items is never nil.
func (tr *Transformer) Order(o Order) OrderPayload {
	items := make([]OrderItemPayload, 0, len(o.Items))
	total := decimal.Zero

	for _, item := range o.Items {
		payload := tr.OrderItem(item)
		items = append(items, payload)
		total = total.Add(payload.ItemSubtotal)
	}

	return OrderPayload{
		OrderID:    o.OrderID,
		CreatedAt:  o.CreatedAt,
		Username:   o.User.FullName(),
		Email:      o.User.Email,
		Status:     o.Status,
		Items:      items,
		TotalPrice: total,
	}
}

// ProductInfo wraps a product listing with caller-supplied aggregates. Count
// and maxPrice are trusted as given; callers may intentionally pass
// aggregates computed over a superset of products.
func (tr *Transformer) ProductInfo(products []Product, count int, maxPrice float64) ProductInfoPayload {
	payloads := make([]ProductPayload, 0, len(products))
	for _, p := range products {
		payloads = append(payloads, tr.Product(p))
	}

	return ProductInfoPayload{
		Products: payloads,
		Count:    count,
		MaxPrice: maxPrice,
	}
}
