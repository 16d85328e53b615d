package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kinmelhub/kinmel-api/controllers"
	"github.com/kinmelhub/kinmel-api/middlewares"
)

func NotificationRoutes(server *gin.Engine) {
	notifications := server.Group("/notifications", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		notifications.GET("", controllers.GetNotifications)
		notifications.PATCH("/:id/read", controllers.MarkNotificationRead)
	}
}
