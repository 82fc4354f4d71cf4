package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Dannybanksrocks/agriconnect-api/initializers"
	"github.com/Dannybanksrocks/agriconnect-api/middlewares"
	"github.com/Dannybanksrocks/agriconnect-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddAddress creates an address in the consumer's book. An incoming default
// flag clears the flag on every other address first, keeping at most one
// default.
func AddAddress(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var address models.DeliveryAddress
	if err := ctx.ShouldBindJSON(&address); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	address.UserID = userId

	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := tx.Model(&models.DeliveryAddress{}).
				Where("user_id = ?", userId).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&address).Error
	})
	if err != nil {
		log.Println("Address creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save address")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"address": address})
}

func GetAddresses(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var addresses []models.DeliveryAddress
	if err := initializers.DB.Where("user_id = ?", userId).Find(&addresses).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch addresses")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"addresses": addresses})
}

// SetDefaultAddress recomputes the default flags through the address book
// helper and persists them in one transaction, so at most one address ever
// carries the flag.
func SetDefaultAddress(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	addressId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse address id")
		return
	}

	var addresses []models.DeliveryAddress
	if err := initializers.DB.Where("user_id = ?", userId).Find(&addresses).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch addresses")
		return
	}

	if !models.SetDefaultAddress(addresses, uint(addressId)) {
		sendErrorResponse(ctx, http.StatusNotFound, "Address not found")
		return
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		for _, address := range addresses {
			if err := tx.Model(&models.DeliveryAddress{}).
				Where("id = ?", address.ID).
				Update("is_default", address.IsDefault).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to set default address")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Default address updated."})
}

// RemoveAddress deletes an address. No other address is promoted to
// default; a book with zero defaults is allowed.
func RemoveAddress(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	addressId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse address id")
		return
	}

	result := initializers.DB.
		Where("id = ? AND user_id = ?", addressId, userId).
		Delete(&models.DeliveryAddress{})
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove address")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Address not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Address removed."})
}
