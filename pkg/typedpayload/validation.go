package typedpayload

import (
	"github.com/shopspring/decimal"
)

// User-visible validation messages.
const (
	msgPriceNotPositive    = "Price must be greater than 0."
	msgInvalidEmail        = "Enter a valid email address."
	msgQuantityNotPositive = "Quantity must be a positive integer."
)

// ProductWrite is a candidate field-set for creating or updating a product.
// Nil fields are not being set and pass through untouched.
type ProductWrite struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
}

// UserWrite is a candidate field-set for updating a user's contact details.
// The display name is derived and cannot be written.
type UserWrite struct {
	Email *string `json:"email,omitempty"`
}

// OrderItemWrite is a candidate field-set for creating or updating an order
// line.
type OrderItemWrite struct {
	ProductID *int64 `json:"product_id,omitempty"`
	Quantity  *int   `json:"quantity,omitempty"`
}

// ValidateProductWrite checks a product write candidate and returns the
// accepted fields unchanged. A price less than or equal to zero fails with a
// field error on "price"; every other field passes through unchecked by this
// layer.
func (tr *Transformer) ValidateProductWrite(w ProductWrite) (ProductWrite, error) {
	if w.Price != nil && !w.Price.IsPositive() {
		fieldErrs := NewFieldErrors()
		fieldErrs.Add("price", msgPriceNotPositive)

		return ProductWrite{}, fieldErrs
	}

	return w, nil
}

// ValidateUserWrite checks a user write candidate and returns the accepted
// fields unchanged. A set email must be email-shaped.
func (tr *Transformer) ValidateUserWrite(w UserWrite) (UserWrite, error) {
	if w.Email != nil {
		if err := tr.validate.Var(*w.Email, "required,email"); err != nil {
			fieldErrs := NewFieldErrors()
			fieldErrs.Add("email", msgInvalidEmail)

			return UserWrite{}, fieldErrs
		}
	}

	return w, nil
}

// ValidateOrderItemWrite checks an order line write candidate and returns
// the accepted fields unchanged. A set quantity must be a positive integer.
func (tr *Transformer) ValidateOrderItemWrite(w OrderItemWrite) (OrderItemWrite, error) {
	if w.Quantity != nil && *w.Quantity <= 0 {
		fieldErrs := NewFieldErrors()
		fieldErrs.Add("quantity", msgQuantityNotPositive)

		return OrderItemWrite{}, fieldErrs
	}

	return w, nil
}
