package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

type DiscountCode struct {
	gorm.Model
	Code           string                `json:"code" binding:"required" gorm:"uniqueIndex;size:40"`
	Type           string                `json:"type" binding:"required"`
	Value          decimal.Decimal       `json:"value" gorm:"type:decimal(12,2)"`
	MinOrderAmount decimal.Decimal       `json:"minOrderAmount" gorm:"type:decimal(12,2)"`
	MaxUses        *int                  `json:"maxUses,omitempty"`
	CurrentUses    int                   `json:"currentUses"`
	ValidFrom      time.Time             `json:"validFrom"`
	ValidUntil     *time.Time            `json:"validUntil,omitempty"`
	Active         bool                  `json:"active"`
	Products       []ProductDiscountLink `json:"products,omitempty" gorm:"foreignKey:DiscountCodeID;constraint:OnDelete:CASCADE"`
}

// ProductDiscountLink attaches a code to a product so it applies
// automatically, without the customer typing anything.
type ProductDiscountLink struct {
	gorm.Model
	DiscountCodeID uint `json:"discountCodeId" gorm:"uniqueIndex:idx_discount_product"`
	ProductId      int  `json:"productId" gorm:"uniqueIndex:idx_discount_product"`
}
