package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/Dannybanksrocks/agriconnect-api/initializers"
	"github.com/Dannybanksrocks/agriconnect-api/middlewares"
	"github.com/Dannybanksrocks/agriconnect-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func isAdmin(ctx *gin.Context) bool {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return false
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == models.RoleAdmin
}

func findOrder(orderId int) (models.Order, error) {
	var order models.Order
	err := initializers.DB.
		Preload("Items").
		Preload("StatusHistory").
		First(&order, orderId).Error
	return order, err
}

// GetMyOrders lists the authenticated consumer's orders, newest first.
func GetMyOrders(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var orders []models.Order
	result := initializers.DB.
		Preload("Items").
		Preload("StatusHistory").
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func GetOrderById(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := findOrder(orderId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	// Consumers can only read their own orders; admins see everything.
	userId, _ := middlewares.UserID(ctx)
	if order.UserID != userId && !isAdmin(ctx) {
		sendErrorResponse(ctx, http.StatusForbidden, "Not your order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// GetOrders is the admin order book with pagination metadata.
func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("Items").Preload("StatusHistory")

	if search := ctx.Query("search"); search != "" {
		query = query.Where("order_number LIKE ?", "%"+search+"%")
	}

	query = query.Order("created_at " + sortOrder)

	result := query.Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("order_number LIKE ?", "%"+search+"%")
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

// applyTransition runs the status change through the order's transition
// guard and persists the new status plus its history entry.
func applyTransition(order *models.Order, newStatus, note string) error {
	if err := order.Transition(newStatus, note); err != nil {
		return err
	}
	return initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", newStatus).Error; err != nil {
			return err
		}
		entry := order.StatusHistory[len(order.StatusHistory)-1]
		entry.OrderID = int(order.ID)
		return tx.Create(&entry).Error
	})
}

// UpdateOrderStatus moves an order forward through its lifecycle. Backward
// or skipping transitions are rejected; items and totals are never touched.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
		Note   string `json:"note"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if !models.ValidOrderStatus(orderStatusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := findOrder(orderId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	note := orderStatusData.Note
	if note == "" {
		note = "Status updated"
	}

	if err := applyTransition(&order, orderStatusData.Status, note); err != nil {
		var illegal models.ErrIllegalTransition
		if errors.As(err, &illegal) {
			sendErrorResponse(ctx, http.StatusConflict, illegal.Error())
			return
		}
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
		"status":  order.Status,
	})
}

// CancelOrder lets a consumer cancel their own order. The transition guard
// only allows it while the order is placed or confirmed.
func CancelOrder(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := findOrder(orderId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	if order.UserID != userId {
		sendErrorResponse(ctx, http.StatusForbidden, "Not your order")
		return
	}

	if err := applyTransition(&order, models.OrderCancelled, "Cancelled by customer"); err != nil {
		var illegal models.ErrIllegalTransition
		if errors.As(err, &illegal) {
			sendErrorResponse(ctx, http.StatusConflict, "Order can no longer be cancelled")
			return
		}
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to cancel order")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order cancelled."})
}

// GetUndeliveredOrders counts orders still moving through the pipeline.
func GetUndeliveredOrders(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.Order{}).
		Where("status NOT IN ?", []string{models.OrderDelivered, models.OrderCancelled}).
		Count(&count)

	if result.Error != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count undelivered orders"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"undeliveredOrderCount": count})
}
