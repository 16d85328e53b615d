package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kinmelhub/kinmel-api/controllers"
)

func CheckoutRoutes(server *gin.Engine) {
	checkout := server.Group("/checkout")
	{
		checkout.POST("/preview", controllers.PreviewCheckout)
		checkout.POST("", controllers.Checkout)
		checkout.POST("/evidence", controllers.UploadPaymentEvidence)
	}
}
