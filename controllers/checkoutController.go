package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Dannybanksrocks/agriconnect-api/initializers"
	"github.com/Dannybanksrocks/agriconnect-api/middlewares"
	"github.com/Dannybanksrocks/agriconnect-api/models"
	"github.com/Dannybanksrocks/agriconnect-api/payments"
	"github.com/Dannybanksrocks/agriconnect-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentGateway is swapped to the hosted mobile-money client in main when
// gateway credentials are configured.
var PaymentGateway payments.Gateway = payments.NewMockGateway(1200 * time.Millisecond)

type checkoutInput struct {
	AddressID     int    `json:"addressId"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	PaymentPhone  string `json:"paymentPhone" binding:"required"`
}

// resolveDeliveryAddress picks the requested address, or the default one
// when none is named. Required only when the cart holds a delivery item.
func resolveDeliveryAddress(userId, addressId int) (*models.DeliveryAddress, error) {
	var addresses []models.DeliveryAddress
	if err := initializers.DB.Where("user_id = ?", userId).Find(&addresses).Error; err != nil {
		return nil, err
	}
	if addressId > 0 {
		for i := range addresses {
			if addresses[i].ID == uint(addressId) {
				return &addresses[i], nil
			}
		}
		return nil, nil
	}
	return models.DefaultAddress(addresses), nil
}

func sendOrderConfirmationEmail(userId int, orderNumber string) {
	var user models.User
	if err := initializers.DB.First(&user, userId).Error; err != nil {
		return
	}

	emailData := utils.EmailData{
		Name:        user.Fullname,
		Message:     "Your order has been placed and payment confirmed. We will notify you as it moves toward delivery.",
		OrderNumber: orderNumber,
		LogoURL:     os.Getenv("FRONTEND_URL") + "/images/logo.png",
	}
	templatePath := filepath.Join("templates", "order_confirmation.html")
	if err := utils.SendEmail(user.Email, "Order "+orderNumber+" confirmed", emailData, templatePath); err != nil {
		log.Println("Error sending order confirmation email:", err)
	}
}

// Checkout turns the current cart into an immutable order: validates the
// payment input, charges the gateway, freezes items and totals, appends the
// order at "placed" and clears the cart.
func Checkout(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var input checkoutInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Payment method and phone are required")
		return
	}

	if !payments.ValidMethod(input.PaymentMethod) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown payment method")
		return
	}
	if !payments.ValidPaymentPhone(input.PaymentPhone) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Payment phone must be 8 to 10 digits")
		return
	}

	cart, err := loadCart(userId)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	// The address is copied into the order, not referenced, so deleting it
	// later leaves placed orders intact.
	var address *models.DeliveryAddress
	if cart.HasDeliveryItem() {
		address, err = resolveDeliveryAddress(userId, input.AddressID)
		if err != nil {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch addresses")
			return
		}
	}

	order, err := models.PlaceOrder(&cart, address, initializers.DeliveryFee(), initializers.ExchangeRate())
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyCart):
			sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
		case errors.Is(err, models.ErrAddressRequired):
			sendErrorResponse(ctx, http.StatusBadRequest, "A delivery address is required for delivery items")
		default:
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	orderNumber := "AGC-" + uuid.NewString()[:8]

	receipt, err := PaymentGateway.Charge(ctx.Request.Context(), payments.ChargeRequest{
		Reference: orderNumber,
		Phone:     input.PaymentPhone,
		AmountLRD: order.TotalLRD,
		Narration: fmt.Sprintf("AgriConnect order %s", orderNumber),
	})
	if err != nil {
		if errors.Is(err, payments.ErrDeclined) {
			sendErrorResponse(ctx, http.StatusPaymentRequired, "Payment was declined")
			return
		}
		log.Println("Payment gateway error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, "Payment could not be processed")
		return
	}

	order.OrderNumber = orderNumber
	order.PaymentMethod = input.PaymentMethod
	order.PaymentPhone = input.PaymentPhone
	order.PaymentStatus = models.PaymentPaid
	order.PaymentRef = receipt.Reference
	order.StatusHistory = []models.OrderStatusEntry{
		{Status: models.OrderPlaced, Note: "Order placed, payment confirmed via " + input.PaymentMethod},
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		log.Println("Order creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save order")
		return
	}

	go sendOrderConfirmationEmail(userId, orderNumber)

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":     "Order placed successfully.",
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
		"totalLRD":    order.TotalLRD,
		"totalUSD":    order.TotalUSD,
	})
}
