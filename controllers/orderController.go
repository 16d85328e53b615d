package controllers

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kinmelhub/kinmel-api/initializers"
	"github.com/kinmelhub/kinmel-api/models"
	"github.com/kinmelhub/kinmel-api/services"
)

func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("Items")

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if paymentStatus := ctx.Query("paymentStatus"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}
	if search := ctx.Query("search"); search != "" {
		query = query.Where("id LIKE ? OR order_number LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	query = query.Order("created_at " + sortOrder)

	result := query.Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
	if status := ctx.Query("status"); status != "" {
		countQuery = countQuery.Where("status = ?", status)
	}
	if paymentStatus := ctx.Query("paymentStatus"); paymentStatus != "" {
		countQuery = countQuery.Where("payment_status = ?", paymentStatus)
	}
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("id LIKE ? OR order_number LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func GetOrdersByCustomerId(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var orders []models.Order
	result := initializers.DB.Preload("Items").
		Where("user_id = ?", userId).
		Order("created_at " + sortOrder).
		Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders": orders,
	})
}

func GetOrderById(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := services.GormOrderStore{DB: initializers.DB}.GetOrder(uint(orderId))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"order": order,
	})
}

// GetOrderByNumber is the customer-facing lookup: guests track their order
// with the number from the confirmation screen.
func GetOrderByNumber(ctx *gin.Context) {
	var order models.Order
	result := initializers.DB.Preload("Items").
		Where("order_number = ?", ctx.Param("orderNumber")).
		First(&order)
	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	var history []models.StatusHistory
	initializers.DB.Where("order_id = ?", order.ID).Order("created_at asc").Find(&history)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"order":   order,
		"history": history,
	})
}

func GetOrderHistory(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var history []models.StatusHistory
	result := initializers.DB.
		Where("order_id = ?", orderId).
		Order("created_at asc").
		Find(&history)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order history.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"history": history,
	})
}

func UpdateOrderStatus(ctx *gin.Context) {
	var body struct {
		Status            string     `json:"status" binding:"required"`
		TrackingNumber    string     `json:"trackingNumber"`
		EstimatedDelivery *time.Time `json:"estimatedDelivery"`
		Notes             string     `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := services.UpdateOrderStatus(
		services.GormOrderStore{DB: initializers.DB},
		uint(orderId),
		services.TransitionRequest{
			Status:            body.Status,
			TrackingNumber:    body.TrackingNumber,
			EstimatedDelivery: body.EstimatedDelivery,
			Notes:             body.Notes,
		},
	)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
		"order":   order,
	})
}

func ApprovePayment(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := services.ApprovePayment(services.GormOrderStore{DB: initializers.DB}, uint(orderId))
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Payment approved.",
		"order":   order,
	})
}

func RejectPayment(ctx *gin.Context) {
	var body struct {
		Reason string `json:"reason"`
	}
	// Body is optional; a rejection without a reason is still a rejection.
	_ = ctx.ShouldBindJSON(&body)

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := services.RejectPayment(services.GormOrderStore{DB: initializers.DB}, uint(orderId), body.Reason)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Payment rejected and order cancelled.",
		"order":   order,
	})
}

func GetUndeliveredOrders(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.Order{}).
		Where("status NOT IN ?", []string{models.OrderStatusDelivered, models.OrderStatusCancelled}).
		Count(&count)

	if result.Error != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count undelivered orders"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"undeliveredOrderCount": count})
}
