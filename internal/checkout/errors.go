package checkout

import "errors"

var (
	ErrEmptyCart        = errors.New("cart is empty, nothing to checkout")
	ErrCheckoutFinished = errors.New("checkout already finished")
	ErrValidationFailed = errors.New("validation failed")
	ErrUnknownMethod    = errors.New("unknown payment method")
	ErrUnknownField     = errors.New("unknown checkout field")
)
