package models

import "github.com/shopspring/decimal"

// CartLine is a checkout request line. Carts live client-side; the server
// only ever sees them inside a preview or checkout payload.
type CartLine struct {
	ProductId int             `json:"productId" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" binding:"required,gte=1"`
	ImageURL  string          `json:"imageUrl"`
}
