package models

import "gorm.io/gorm"

// SavedItem is a consumer's wishlist entry pointing at a listing.
type SavedItem struct {
	gorm.Model
	UserID    int    `json:"userId"`
	ListingID int    `json:"listingId" binding:"required"`
	CropName  string `json:"cropName"`
	ImageUrl  string `json:"imageUrl"`
}
