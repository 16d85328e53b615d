package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kinmelhub/kinmel-api/controllers"
	"github.com/kinmelhub/kinmel-api/middlewares"
)

func DiscountRoutes(server *gin.Engine) {
	discount := server.Group("/discount", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		discount.POST("", controllers.CreateDiscount)
		discount.GET("", controllers.GetDiscounts)
		discount.GET("/:id", controllers.GetDiscount)
		discount.PATCH("/:id", controllers.UpdateDiscount)
		discount.DELETE("/:id", controllers.DeleteDiscount)
		discount.POST("/:id/products", controllers.LinkDiscountProduct)
		discount.DELETE("/:id/products/:productId", controllers.UnlinkDiscountProduct)
	}
}
