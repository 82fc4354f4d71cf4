package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the AgriConnect API ❤️. Market prices, weather and fresh produce for Liberia.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/verify-email/:activationToken" - Activate user account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset user password

LISTINGS
- GET "/listings" - Browse produce listings (search, county, category, price, sort)
- GET "/listings/:id" - Get listing by ID
- POST "/listings" - Create listing (farmer)
- POST "/listing-images" - Upload listing photos (farmer)
- PATCH "/listings/:id/status" - Update listing status (farmer)

CART
- GET "/cart" - Get my cart
- POST "/cart" - Add listing to cart
- PATCH "/cart/:listingId" - Update quantity or fulfillment
- DELETE "/cart/:listingId" - Remove item
- DELETE "/cart" - Clear cart

CHECKOUT & ORDERS
- POST "/checkout" - Place an order from the cart
- GET "/orders" - My orders
- GET "/orders/:orderId" - Order by ID
- PATCH "/orders/:orderId/cancel" - Cancel my order
- GET "/admin/orders" - All orders (admin)
- PATCH "/admin/orders/:orderId/status" - Update order status (admin)

ADDRESSES
- POST "/addresses" - Add delivery address
- GET "/addresses" - My address book
- PATCH "/addresses/:id/default" - Set default address
- DELETE "/addresses/:id" - Remove address

SCHEDULED ORDERS & SAVED ITEMS
- POST "/scheduled-orders" - Create recurring order from cart
- GET "/scheduled-orders" - My recurring orders
- PATCH "/scheduled-orders/:id/cancel" - Cancel recurring order
- POST "/saved-items" - Save a listing
- GET "/saved-items" - My saved listings
- DELETE "/saved-items/:id" - Remove saved listing

MARKET
- GET "/market/prices" - Weekly market price board
- GET "/market/weather/:county" - 5-day county forecast
- GET "/market/tips" - Agronomy tips
- GET "/market/alerts" - Advisories and alerts`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
