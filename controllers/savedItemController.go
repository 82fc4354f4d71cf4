package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Dannybanksrocks/agriconnect-api/initializers"
	"github.com/Dannybanksrocks/agriconnect-api/middlewares"
	"github.com/Dannybanksrocks/agriconnect-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SaveItem bookmarks a listing. Saving the same listing twice is a no-op.
func SaveItem(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var input struct {
		ListingID int `json:"listingId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var listing models.Listing
	if err := initializers.DB.Preload("Images").First(&listing, input.ListingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Listing not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch listing")
		}
		return
	}

	var existing models.SavedItem
	err := initializers.DB.Where("user_id = ? AND listing_id = ?", userId, input.ListingID).First(&existing).Error
	if err == nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"savedItem": existing})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch saved items")
		return
	}

	imageUrl := ""
	if len(listing.Images) > 0 {
		imageUrl = listing.Images[0].Url
	}

	saved := models.SavedItem{
		UserID:    userId,
		ListingID: input.ListingID,
		CropName:  listing.CropName,
		ImageUrl:  imageUrl,
	}
	if err := initializers.DB.Create(&saved).Error; err != nil {
		log.Println("Saved item creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save listing")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"savedItem": saved})
}

func GetSavedItems(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var saved []models.SavedItem
	if err := initializers.DB.Where("user_id = ?", userId).Order("created_at desc").Find(&saved).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch saved items")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"savedItems": saved})
}

func RemoveSavedItem(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	savedId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse saved item id")
		return
	}

	result := initializers.DB.
		Where("id = ? AND user_id = ?", savedId, userId).
		Delete(&models.SavedItem{})
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove saved item")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Saved item not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Saved item removed."})
}
