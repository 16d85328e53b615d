package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kinmelhub/kinmel-api/initializers"
	"github.com/kinmelhub/kinmel-api/models"
	"github.com/kinmelhub/kinmel-api/services"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func CreateDiscount(ctx *gin.Context) {
	var discount models.DiscountCode
	if err := ctx.ShouldBindJSON(&discount); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := services.ValidateDiscountValue(discount.Type, discount.Value); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	if discount.MinOrderAmount.IsNegative() {
		sendErrorResponse(ctx, http.StatusBadRequest, "Minimum order amount cannot be negative")
		return
	}

	// Codes are matched case-insensitively; store the canonical form.
	discount.Code = strings.ToUpper(strings.TrimSpace(discount.Code))
	discount.CurrentUses = 0

	if err := initializers.DB.Create(&discount).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create discount code", err)
		return
	}

	ctx.JSON(http.StatusCreated, discount)
}

func GetDiscounts(ctx *gin.Context) {
	var discounts []models.DiscountCode

	query := initializers.DB.Preload("Products")
	if active := ctx.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
	}

	if result := query.Order("created_at desc").Find(&discounts); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch discount codes", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"discounts": discounts})
}

func GetDiscount(ctx *gin.Context) {
	discountId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse discount id")
		return
	}

	var discount models.DiscountCode
	result := initializers.DB.Preload("Products").First(&discount, discountId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Discount code not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve discount code", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, discount)
}

func UpdateDiscount(ctx *gin.Context) {
	discountId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse discount id")
		return
	}

	var body struct {
		Value          *float64   `json:"value"`
		MinOrderAmount *float64   `json:"minOrderAmount"`
		MaxUses        *int       `json:"maxUses"`
		ValidUntil     *time.Time `json:"validUntil"`
		Active         *bool      `json:"active"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var discount models.DiscountCode
	if err := initializers.DB.First(&discount, discountId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Discount code not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve discount code", err)
		}
		return
	}

	// Only the mutable fields; code, type and usage counter are not
	// editable after creation. Patched values must satisfy the same
	// invariants as creation.
	updates := map[string]any{}
	if body.Value != nil {
		value := decimal.NewFromFloat(*body.Value)
		if err := services.ValidateDiscountValue(discount.Type, value); err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		updates["value"] = value
	}
	if body.MinOrderAmount != nil {
		minOrder := decimal.NewFromFloat(*body.MinOrderAmount)
		if minOrder.IsNegative() {
			sendErrorResponse(ctx, http.StatusBadRequest, "Minimum order amount cannot be negative")
			return
		}
		updates["min_order_amount"] = minOrder
	}
	if body.MaxUses != nil {
		if *body.MaxUses < discount.CurrentUses {
			sendErrorResponse(ctx, http.StatusBadRequest, "Usage limit cannot be below the current usage count")
			return
		}
		updates["max_uses"] = *body.MaxUses
	}
	if body.ValidUntil != nil {
		updates["valid_until"] = *body.ValidUntil
	}
	if body.Active != nil {
		updates["active"] = *body.Active
	}
	if len(updates) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := initializers.DB.Model(&discount).Updates(updates).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update discount code", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Discount code updated successfully."})
}

// DeleteDiscount deactivates a code. Orders keep referencing it, so rows
// are never hard-deleted.
func DeleteDiscount(ctx *gin.Context) {
	discountId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse discount id")
		return
	}

	result := initializers.DB.Model(&models.DiscountCode{}).
		Where("id = ?", discountId).
		Update("active", false)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to deactivate discount code", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Discount code not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Discount code deactivated."})
}

func LinkDiscountProduct(ctx *gin.Context) {
	discountId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse discount id")
		return
	}

	var body struct {
		ProductId int `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var discount models.DiscountCode
	if err := initializers.DB.First(&discount, discountId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Discount code not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate discount code", err)
		}
		return
	}

	link := models.ProductDiscountLink{
		DiscountCodeID: discount.ID,
		ProductId:      body.ProductId,
	}
	if err := initializers.DB.Create(&link).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to link product to discount", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Product linked to discount code.",
		"id":      link.ID,
	})
}

func UnlinkDiscountProduct(ctx *gin.Context) {
	discountId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse discount id")
		return
	}
	productId, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse product id")
		return
	}

	result := initializers.DB.
		Where("discount_code_id = ? AND product_id = ?", discountId, productId).
		Delete(&models.ProductDiscountLink{})
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to unlink product", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Link not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product unlinked from discount code."})
}
