package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kinmelhub/kinmel-api/controllers"
	"github.com/kinmelhub/kinmel-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	server.GET("/track/:orderNumber", controllers.GetOrderByNumber)
	server.GET("/user/:userId/orders", middlewares.RequireAuth(), controllers.GetOrdersByCustomerId)
	server.GET("/stats/undelivered-orders", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetUndeliveredOrders)

	admin := server.Group("/order", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("", controllers.GetOrders)
		admin.GET("/:orderId", controllers.GetOrderById)
		admin.GET("/:orderId/history", controllers.GetOrderHistory)
		admin.PATCH("/:orderId/status", controllers.UpdateOrderStatus)
		admin.POST("/:orderId/payment/approve", controllers.ApprovePayment)
		admin.POST("/:orderId/payment/reject", controllers.RejectPayment)
	}
}
