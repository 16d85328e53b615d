package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Kinmel API ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

CHECKOUT
- POST "/checkout/preview" - Preview cart totals and the best discount
- POST "/checkout" - Place an order
- POST "/checkout/evidence" - Upload a payment screenshot

ORDER
- GET "/order" - Retrieve all orders (admin)
- GET "/order/:orderId" - Get order by ID (admin)
- GET "/order/:orderId/history" - Get order status history (admin)
- GET "/track/:orderNumber" - Track an order by its number
- GET "/user/:userId/orders" - Get orders for a specific user
- PATCH "/order/:orderId/status" - Update order status (admin)
- POST "/order/:orderId/payment/approve" - Approve a verified payment (admin)
- POST "/order/:orderId/payment/reject" - Reject a payment and cancel (admin)
- GET "/stats/undelivered-orders" - Count undelivered orders (admin)

DISCOUNT
- POST "/discount" - Create a discount code (admin)
- GET "/discount" - List discount codes (admin)
- GET "/discount/:id" - Get discount code by ID (admin)
- PATCH "/discount/:id" - Update a discount code (admin)
- DELETE "/discount/:id" - Deactivate a discount code (admin)
- POST "/discount/:id/products" - Link a product for automatic discounts (admin)
- DELETE "/discount/:id/products/:productId" - Remove a product link (admin)

NOTIFICATION
- GET "/notifications" - List admin notifications (admin)
- PATCH "/notifications/:id/read" - Mark a notification as read (admin)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
