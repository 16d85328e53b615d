package services

import "errors"

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidCartLine      = errors.New("cart line has invalid price or quantity")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")

	ErrDiscountNotFound      = errors.New("discount code not found")
	ErrInvalidDiscountType   = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountValue  = errors.New("discount value is out of range for its type")
	ErrDiscountInactive      = errors.New("discount code is not active")
	ErrDiscountExpired       = errors.New("discount code has expired")
	ErrDiscountUsageExceeded = errors.New("discount code usage limit reached")
	ErrDiscountMinimumNotMet = errors.New("order does not meet the discount minimum amount")

	ErrMissingTransactionRef = errors.New("transaction reference is required for this payment method")
	ErrMissingEvidence       = errors.New("payment evidence is required for this payment method")

	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
)
