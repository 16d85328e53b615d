package services

import (
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/kinmelhub/kinmel-api/models"
	"github.com/shopspring/decimal"
)

// OrderStore is the persistence surface for order submission.
type OrderStore interface {
	// CreateOrder persists the order and its items in one transaction.
	CreateOrder(order *models.Order) error
	AppendHistory(entry *models.StatusHistory) error
}

// Notifier delivers admin notifications. Implementations must never block
// the caller for long and must swallow their own failures.
type Notifier interface {
	Notify(title, message, severity string, entityID uint, entityType string)
}

type SubmitOrderRequest struct {
	Cart            []models.CartLine
	UserID          *int
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	ShippingAddress string
	PaymentMethod   string
	DiscountCode    string
	TransactionRef  string
	EvidenceURL     string
}

func generateOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// SubmitOrder turns a cart into a durable order. Persisting the order row
// (with its items) is the durability boundary: once that commits the
// customer has an order, and everything after it — usage increment,
// history entry, admin notification — is best-effort and only logged on
// failure.
func SubmitOrder(orders OrderStore, discounts DiscountStore, notifier Notifier, req SubmitOrderRequest) (*models.Order, error) {
	if len(req.Cart) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range req.Cart {
		if line.Quantity < 1 || line.Price.IsNegative() {
			return nil, ErrInvalidCartLine
		}
	}

	if err := ValidatePayment(req.PaymentMethod, req.TransactionRef, req.EvidenceURL); err != nil {
		return nil, err
	}

	subtotal := Subtotal(req.Cart)
	resolution, err := ResolveDiscount(discounts, req.Cart, subtotal, req.DiscountCode)
	if err != nil {
		return nil, err
	}

	discountAmount := decimal.Zero
	if resolution != nil {
		// Rounded once here so the persisted figure is exactly what the
		// customer was shown at preview.
		discountAmount = resolution.Amount.Round(2)
	}
	total := subtotal.Sub(discountAmount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	order := &models.Order{
		OrderNumber:     generateOrderNumber(),
		UserID:          req.UserID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
		Subtotal:        subtotal,
		DiscountAmount:  discountAmount,
		Total:           total,
		PaymentMethod:   req.PaymentMethod,
		TransactionRef:  req.TransactionRef,
		EvidenceURL:     req.EvidenceURL,
		PaymentStatus:   InitialPaymentStatus(req.PaymentMethod),
		Status:          models.OrderStatusProcessing,
		ItemSchema:      models.OrderItemSchema,
	}
	if resolution != nil {
		order.DiscountCode = resolution.Discount.Code
		order.DiscountCodeID = &resolution.Discount.ID
	}
	for _, line := range req.Cart {
		order.Items = append(order.Items, models.OrderItem{
			ProductId: line.ProductId,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			ImageURL:  line.ImageURL,
		})
	}

	if err := orders.CreateOrder(order); err != nil {
		return nil, err
	}

	// The order is committed; nothing below may fail the submission.
	if resolution != nil {
		if err := discounts.IncrementUsage(resolution.Discount.ID); err != nil {
			log.Printf("Order %d: failed to increment usage for discount %s: %v",
				order.ID, resolution.Discount.Code, err)
		}
	}

	if err := orders.AppendHistory(&models.StatusHistory{
		OrderID: order.ID,
		Status:  models.OrderStatusProcessing,
		Notes:   "Order placed",
	}); err != nil {
		log.Printf("Order %d: failed to append history entry: %v", order.ID, err)
	}

	notifier.Notify(
		"New order "+order.OrderNumber,
		req.FirstName+" "+req.LastName+" placed an order of Rs. "+total.StringFixed(2),
		models.NotificationSeverityInfo,
		order.ID,
		"order",
	)

	return order, nil
}
