package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Dannybanksrocks/agriconnect-api/initializers"
	"github.com/Dannybanksrocks/agriconnect-api/middlewares"
	"github.com/Dannybanksrocks/agriconnect-api/models"
	"github.com/gin-gonic/gin"
)

// CreateScheduledOrder snapshots the current cart into a recurring-order
// template. The cart itself is left alone; only checkout clears it.
func CreateScheduledOrder(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var input struct {
		Frequency    string    `json:"frequency" binding:"required"`
		NextDelivery time.Time `json:"nextDelivery"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if !models.ValidFrequency(input.Frequency) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown frequency")
		return
	}

	cart, err := loadCart(userId)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}
	if len(cart.Items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
		return
	}

	itemsSnapshot, err := json.Marshal(cart.Items)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	nextDelivery := input.NextDelivery
	if nextDelivery.IsZero() {
		nextDelivery = models.NextDeliveryAfter(time.Now(), input.Frequency)
	}

	scheduled := models.ScheduledOrder{
		UserID:       userId,
		Frequency:    input.Frequency,
		NextDelivery: nextDelivery,
		Items:        itemsSnapshot,
		Active:       true,
	}

	if err := initializers.DB.Create(&scheduled).Error; err != nil {
		log.Println("Scheduled order creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create scheduled order")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"scheduledOrder": scheduled})
}

func GetScheduledOrders(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var scheduled []models.ScheduledOrder
	if err := initializers.DB.Where("user_id = ?", userId).Order("created_at desc").Find(&scheduled).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch scheduled orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"scheduledOrders": scheduled})
}

// CancelScheduledOrder deactivates the template. Orders already placed from
// it are not affected.
func CancelScheduledOrder(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	scheduledId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse scheduled order id")
		return
	}

	result := initializers.DB.Model(&models.ScheduledOrder{}).
		Where("id = ? AND user_id = ?", scheduledId, userId).
		Update("active", false)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to cancel scheduled order")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Scheduled order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Scheduled order cancelled."})
}
