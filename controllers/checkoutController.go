package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kinmelhub/kinmel-api/initializers"
	"github.com/kinmelhub/kinmel-api/models"
	"github.com/kinmelhub/kinmel-api/services"
	"github.com/kinmelhub/kinmel-api/utils"
	"github.com/shopspring/decimal"
)

type previewRequest struct {
	Cart         []models.CartLine `json:"cart" binding:"required"`
	DiscountCode string            `json:"discountCode"`
}

type checkoutRequest struct {
	Cart            []models.CartLine `json:"cart" binding:"required"`
	UserID          *int              `json:"userId"`
	FirstName       string            `json:"firstName" binding:"required"`
	LastName        string            `json:"lastName" binding:"required"`
	Email           string            `json:"email" binding:"required,email"`
	Phone           string            `json:"phone" binding:"required"`
	ShippingAddress string            `json:"shippingAddress" binding:"required"`
	PaymentMethod   string            `json:"paymentMethod" binding:"required"`
	DiscountCode    string            `json:"discountCode"`
	TransactionRef  string            `json:"transactionRef"`
	EvidenceURL     string            `json:"evidenceUrl"`
}

// normalizeCart merges duplicate product lines so a product added twice
// shows up once with the summed quantity. Duplicates that disagree on
// price are rejected rather than silently billed at the first price.
func normalizeCart(cart []models.CartLine) ([]models.CartLine, error) {
	merged := make([]models.CartLine, 0, len(cart))
	index := make(map[int]int)
	for _, line := range cart {
		if at, seen := index[line.ProductId]; seen {
			if !merged[at].Price.Equal(line.Price) {
				return nil, services.ErrInvalidCartLine
			}
			merged[at].Quantity += line.Quantity
			continue
		}
		index[line.ProductId] = len(merged)
		merged = append(merged, line)
	}
	return merged, nil
}

// PreviewCheckout resolves the best discount for a cart without touching
// anything: no usage counters move until the order is actually placed.
func PreviewCheckout(ctx *gin.Context) {
	var req previewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cart, err := normalizeCart(req.Cart)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	subtotal := services.Subtotal(cart)

	store := services.GormDiscountStore{DB: initializers.DB}
	resolution, err := services.ResolveDiscount(store, cart, subtotal, req.DiscountCode)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	discountAmount := decimal.Zero
	appliedCode := ""
	if resolution != nil {
		discountAmount = resolution.Amount.Round(2)
		appliedCode = resolution.Discount.Code
	}
	total := subtotal.Sub(discountAmount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"subtotal":       subtotal,
		"discountAmount": discountAmount,
		"discountCode":   appliedCode,
		"total":          total,
	})
}

// Checkout submits the order. Once this returns 201 the order exists, no
// matter what happens to the follow-up bookkeeping.
func Checkout(ctx *gin.Context) {
	var req checkoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cart, err := normalizeCart(req.Cart)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	order, err := services.SubmitOrder(
		services.GormOrderStore{DB: initializers.DB},
		services.GormDiscountStore{DB: initializers.DB},
		utils.AdminNotifier{DB: initializers.DB},
		services.SubmitOrderRequest{
			Cart:            cart,
			UserID:          req.UserID,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Email:           req.Email,
			Phone:           req.Phone,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			DiscountCode:    req.DiscountCode,
			TransactionRef:  req.TransactionRef,
			EvidenceURL:     req.EvidenceURL,
		},
	)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order placed successfully.",
		"order":   order,
	})
}
