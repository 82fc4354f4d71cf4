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

// loadCart fetches the consumer's cart with items, creating an empty cart
// row on first use.
func loadCart(userId int) (models.Cart, error) {
	var cart models.Cart
	err := initializers.DB.Where("user_id = ?", userId).Preload("Items").First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userId}
		if createErr := initializers.DB.Create(&cart).Error; createErr != nil {
			return cart, createErr
		}
		return cart, nil
	}
	return cart, err
}

// saveCartItems rewrites the cart's item rows after an in-memory mutation.
func saveCartItems(cart *models.Cart) error {
	return initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range cart.Items {
			cart.Items[i].ID = 0
			cart.Items[i].CartID = int(cart.ID)
			if err := tx.Create(&cart.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func GetCart(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cart, err := loadCart(userId)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}

// AddCartItem puts a listing in the cart. Quantity and price are
// snapshotted from the listing; asking for more than is available silently
// clamps rather than failing. Adding a listing already in the cart merges
// the quantities.
func AddCartItem(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var input struct {
		ListingID   int    `json:"listingId" binding:"required"`
		Quantity    int    `json:"quantity"`
		Fulfillment string `json:"fulfillment"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Fulfillment != "" && !models.ValidFulfillment(input.Fulfillment) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown fulfillment type")
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

	if listing.Status != models.ListingAvailable {
		sendErrorResponse(ctx, http.StatusBadRequest, "Listing is no longer available")
		return
	}

	cart, err := loadCart(userId)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	imageUrl := ""
	if len(listing.Images) > 0 {
		imageUrl = listing.Images[0].Url
	}

	cart.AddItem(models.CartItem{
		ListingID:   int(listing.ID),
		CropName:    listing.CropName,
		FarmerID:    listing.FarmerID,
		FarmerName:  listing.FarmerName,
		PriceLRD:    listing.PriceLRD,
		PriceUSD:    models.ToUSD(listing.PriceLRD, initializers.ExchangeRate()),
		Quantity:    input.Quantity,
		MaxQuantity: listing.Quantity,
		Fulfillment: input.Fulfillment,
		ImageUrl:    imageUrl,
	})

	if err := saveCartItems(&cart); err != nil {
		log.Println("Cart save error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": listing.CropName + " added to cart",
		"cart":    cart,
	})
}

// UpdateCartItem changes quantity and/or fulfillment for one line. Both are
// no-ops if the listing is not in the cart.
func UpdateCartItem(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	listingId, err := strconv.Atoi(ctx.Param("listingId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse listingId")
		return
	}

	var input struct {
		Quantity    *int   `json:"quantity"`
		Fulfillment string `json:"fulfillment"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Fulfillment != "" && !models.ValidFulfillment(input.Fulfillment) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown fulfillment type")
		return
	}

	cart, err := loadCart(userId)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	if input.Quantity != nil {
		cart.SetQuantity(listingId, *input.Quantity)
	}
	if input.Fulfillment != "" {
		cart.SetFulfillment(listingId, input.Fulfillment)
	}

	if err := saveCartItems(&cart); err != nil {
		log.Println("Cart save error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}

func RemoveCartItem(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	listingId, err := strconv.Atoi(ctx.Param("listingId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse listingId")
		return
	}

	cart, err := loadCart(userId)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	cart.RemoveItem(listingId)

	if err := saveCartItems(&cart); err != nil {
		log.Println("Cart save error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}

func ClearCart(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cart, err := loadCart(userId)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	cart.Clear()

	if err := saveCartItems(&cart); err != nil {
		log.Println("Cart save error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart cleared."})
}
