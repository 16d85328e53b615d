package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kinmelhub/kinmel-api/initializers"
	"github.com/kinmelhub/kinmel-api/models"
)

func GetNotifications(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "30"))

	query := initializers.DB.Order("`read` asc, created_at desc").Limit(limit)
	if unread := ctx.Query("unread"); unread == "true" {
		query = query.Where("`read` = ?", false)
	}

	var notifications []models.Notification
	if result := query.Find(&notifications); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch notifications", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"notifications": notifications})
}

func MarkNotificationRead(ctx *gin.Context) {
	notificationId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse notification id")
		return
	}

	result := initializers.DB.Model(&models.Notification{}).
		Where("id = ?", notificationId).
		Update("read", true)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update notification", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Notification not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Notification marked as read."})
}
