package models

import "gorm.io/gorm"

type DeliveryAddress struct {
	gorm.Model
	UserID       int    `json:"userId"`
	County       string `json:"county" binding:"required"`
	District     string `json:"district"`
	Landmark     string `json:"landmark"`
	ContactPhone string `json:"contactPhone" binding:"required"`
	IsDefault    bool   `json:"isDefault"`
}

// SetDefaultAddress marks the address with the given id as the single
// default in the book, clearing the flag everywhere else. Returns false if
// the id is not present. Removing an address never promotes another one, so
// a book with zero defaults is a legal state.
func SetDefaultAddress(addresses []DeliveryAddress, id uint) bool {
	found := false
	for i := range addresses {
		if addresses[i].ID == id {
			found = true
		}
	}
	if !found {
		return false
	}
	for i := range addresses {
		addresses[i].IsDefault = addresses[i].ID == id
	}
	return true
}

// DefaultAddress returns the default entry, or nil when none is set.
func DefaultAddress(addresses []DeliveryAddress) *DeliveryAddress {
	for i := range addresses {
		if addresses[i].IsDefault {
			return &addresses[i]
		}
	}
	return nil
}
