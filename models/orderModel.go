package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fulfillment statuses. Forward-only on the happy path; cancelled is
// reachable from any non-terminal status.
const (
	OrderStatusProcessing     = "processing"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusShipped        = "shipped"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// Payment statuses. pending_verification is only ever resolved by an admin.
const (
	PaymentStatusPending             = "pending"
	PaymentStatusPendingVerification = "pending_verification"
	PaymentStatusPaid                = "paid"
	PaymentStatusFailed              = "failed"
)

const (
	PaymentMethodBankTransfer   = "bank_transfer"
	PaymentMethodCashOnDelivery = "cod"
)

// OrderItemSchema versions the normalized line-item layout so it can
// evolve without guessing what old rows mean.
const OrderItemSchema = 1

type Order struct {
	gorm.Model
	OrderNumber       string          `json:"orderNumber" gorm:"uniqueIndex;size:40"`
	UserID            *int            `json:"userId"`
	FirstName         string          `json:"firstName"`
	LastName          string          `json:"lastName"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	ShippingAddress   string          `json:"shippingAddress"`
	Subtotal          decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2)"`
	DiscountAmount    decimal.Decimal `json:"discountAmount" gorm:"type:decimal(12,2)"`
	DiscountCode      string          `json:"discountCode,omitempty"`
	DiscountCodeID    *uint           `json:"discountCodeId,omitempty"`
	Total             decimal.Decimal `json:"total" gorm:"type:decimal(12,2)"`
	PaymentMethod     string          `json:"paymentMethod"`
	TransactionRef    string          `json:"transactionRef,omitempty"`
	EvidenceURL       string          `json:"evidenceUrl,omitempty"`
	PaymentStatus     string          `json:"paymentStatus"`
	Status            string          `json:"status"`
	TrackingNumber    string          `json:"trackingNumber,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	ItemSchema        int             `json:"itemSchema"`
	Items             []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint            `json:"orderId"`
	ProductId int             `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"imageUrl"`
}

// StatusHistory is insert-only: rows are appended on every lifecycle
// transition and never updated or deleted.
type StatusHistory struct {
	gorm.Model
	OrderID uint   `json:"orderId" gorm:"index"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
}
