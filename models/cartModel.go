package models

import "gorm.io/gorm"

const (
	FulfillmentPickup    = "pickup"
	FulfillmentDelivery  = "delivery"
	FulfillmentBulk      = "bulk"
	FulfillmentScheduled = "scheduled"
)

type CartItem struct {
	gorm.Model
	CartID      int     `json:"cartId"`
	ListingID   int     `json:"listingId"`
	CropName    string  `json:"cropName"`
	FarmerID    int     `json:"farmerId"`
	FarmerName  string  `json:"farmerName"`
	PriceLRD    float64 `json:"priceLRD"`
	PriceUSD    float64 `json:"priceUSD"`
	Quantity    int     `json:"quantity"`
	MaxQuantity int     `json:"maxQuantity"`
	Fulfillment string  `json:"fulfillment"`
	ImageUrl    string  `json:"imageUrl"`
}

type Cart struct {
	gorm.Model
	UserID int        `json:"userId"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// clampQuantity keeps a cart quantity inside [1, max]. The shop never
// rejects an over-ask, it silently caps at what the listing has left.
func clampQuantity(qty, max int) int {
	if max < 1 {
		max = 1
	}
	if qty < 1 {
		return 1
	}
	if qty > max {
		return max
	}
	return qty
}

// AddItem merges by listing: adding a listing already in the cart sums the
// quantities and re-clamps, otherwise the item is appended. MaxQuantity and
// the price are snapshotted from the listing at add time.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ListingID == item.ListingID {
			c.Items[i].Quantity = clampQuantity(c.Items[i].Quantity+item.Quantity, c.Items[i].MaxQuantity)
			return
		}
	}
	item.Quantity = clampQuantity(item.Quantity, item.MaxQuantity)
	if item.Fulfillment == "" {
		item.Fulfillment = FulfillmentPickup
	}
	c.Items = append(c.Items, item)
}

// RemoveItem deletes the line for a listing. No-op if absent.
func (c *Cart) RemoveItem(listingID int) {
	for i := range c.Items {
		if c.Items[i].ListingID == listingID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity clamps the requested quantity into [1, MaxQuantity]. No-op if
// the listing is not in the cart.
func (c *Cart) SetQuantity(listingID, qty int) {
	for i := range c.Items {
		if c.Items[i].ListingID == listingID {
			c.Items[i].Quantity = clampQuantity(qty, c.Items[i].MaxQuantity)
			return
		}
	}
}

// SetFulfillment updates one line's fulfillment method. Mixing methods
// across lines is allowed; the delivery fee is charged once if any line is
// delivery.
func (c *Cart) SetFulfillment(listingID int, fulfillment string) {
	for i := range c.Items {
		if c.Items[i].ListingID == listingID {
			c.Items[i].Fulfillment = fulfillment
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) HasDeliveryItem() bool {
	for _, item := range c.Items {
		if item.Fulfillment == FulfillmentDelivery {
			return true
		}
	}
	return false
}

func ValidFulfillment(fulfillment string) bool {
	switch fulfillment {
	case FulfillmentPickup, FulfillmentDelivery, FulfillmentBulk, FulfillmentScheduled:
		return true
	}
	return false
}
