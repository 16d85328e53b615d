package services

import (
	"strings"
	"time"

	"github.com/kinmelhub/kinmel-api/models"
	"github.com/shopspring/decimal"
)

// DiscountStore is the persistence surface the discount engine needs.
type DiscountStore interface {
	// FindByCode returns the code record regardless of validity, or
	// ErrDiscountNotFound.
	FindByCode(code string) (*models.DiscountCode, error)
	// FindForProducts returns codes linked to any of the given products,
	// ordered by when the link was first created.
	FindForProducts(productIds []int) ([]models.DiscountCode, error)
	// IncrementUsage bumps current_uses by one, only while below the cap.
	IncrementUsage(id uint) error
}

// Resolution is the single winning discount for a cart, if any.
type Resolution struct {
	Discount *models.DiscountCode
	Amount   decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// ValidateDiscountValue enforces the type/value invariants a code must
// hold whether it is being created or patched: positive values, and
// percentages within (0,100].
func ValidateDiscountValue(discountType string, value decimal.Decimal) error {
	switch discountType {
	case models.DiscountTypePercentage:
		if value.LessThanOrEqual(decimal.Zero) || value.GreaterThan(oneHundred) {
			return ErrInvalidDiscountValue
		}
	case models.DiscountTypeFixed:
		if value.LessThanOrEqual(decimal.Zero) {
			return ErrInvalidDiscountValue
		}
	default:
		return ErrInvalidDiscountType
	}
	return nil
}

func Subtotal(cart []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range cart {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// EvaluateDiscount checks a code's validity against the subtotal and
// returns the discount amount it would grant. Pure: no writes, no clock
// other than the one passed in.
func EvaluateDiscount(dc *models.DiscountCode, subtotal decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if !dc.Active || now.Before(dc.ValidFrom) {
		return decimal.Zero, ErrDiscountInactive
	}
	if dc.ValidUntil != nil && dc.ValidUntil.Before(now) {
		return decimal.Zero, ErrDiscountExpired
	}
	if dc.MaxUses != nil && dc.CurrentUses >= *dc.MaxUses {
		return decimal.Zero, ErrDiscountUsageExceeded
	}
	if subtotal.LessThan(dc.MinOrderAmount) {
		return decimal.Zero, ErrDiscountMinimumNotMet
	}

	var amount decimal.Decimal
	switch dc.Type {
	case models.DiscountTypePercentage:
		amount = subtotal.Mul(dc.Value).Div(oneHundred)
	case models.DiscountTypeFixed:
		amount = dc.Value
	default:
		return decimal.Zero, ErrDiscountInactive
	}

	// A discount can never exceed what the customer would have paid.
	if amount.GreaterThan(subtotal) {
		amount = subtotal
	}
	return amount, nil
}

// ResolveDiscount picks the single best discount for the cart: the manual
// code (if given) against the best automatic product-linked candidate.
// The larger amount wins; on an exact tie the manual code wins because the
// customer asked for it. Resolution never mutates usage counters, so an
// abandoned checkout consumes nothing.
func ResolveDiscount(store DiscountStore, cart []models.CartLine, subtotal decimal.Decimal, manualCode string) (*Resolution, error) {
	now := time.Now()

	var manual *Resolution
	if code := strings.ToUpper(strings.TrimSpace(manualCode)); code != "" {
		dc, err := store.FindByCode(code)
		if err != nil {
			return nil, err
		}
		amount, err := EvaluateDiscount(dc, subtotal, now)
		if err != nil {
			return nil, err
		}
		manual = &Resolution{Discount: dc, Amount: amount}
	}

	automatic := bestAutomaticDiscount(store, cart, subtotal, now)

	if manual == nil {
		return automatic, nil
	}
	if automatic != nil && automatic.Amount.GreaterThan(manual.Amount) {
		return automatic, nil
	}
	return manual, nil
}

// bestAutomaticDiscount evaluates every code linked to a product in the
// cart and keeps the largest amount, first-seen winning ties. Candidates
// that fail validity are skipped silently since the customer never asked
// for them.
func bestAutomaticDiscount(store DiscountStore, cart []models.CartLine, subtotal decimal.Decimal, now time.Time) *Resolution {
	productIds := make([]int, 0, len(cart))
	for _, line := range cart {
		productIds = append(productIds, line.ProductId)
	}
	if len(productIds) == 0 {
		return nil
	}

	candidates, err := store.FindForProducts(productIds)
	if err != nil {
		return nil
	}

	var best *Resolution
	for i := range candidates {
		amount, err := EvaluateDiscount(&candidates[i], subtotal, now)
		if err != nil {
			continue
		}
		if best == nil || amount.GreaterThan(best.Amount) {
			best = &Resolution{Discount: &candidates[i], Amount: amount}
		}
	}
	return best
}
