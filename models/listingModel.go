package models

import (
	"sort"
	"strings"

	"gorm.io/gorm"
)

const (
	ListingAvailable = "available"
	ListingReserved  = "reserved"
	ListingSold      = "sold"
	ListingExpired   = "expired"
)

type ListingImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ListingID int    `json:"listingId" binding:"required"`
}

type Listing struct {
	gorm.Model
	FarmerID   int            `json:"farmerId"`
	FarmerName string         `json:"farmerName"`
	CropName   string         `json:"cropName" binding:"required"`
	County     string         `json:"county" binding:"required"`
	Unit       string         `json:"unit"`
	PriceLRD   float64        `json:"priceLRD" binding:"required"`
	PriceUSD   float64        `json:"priceUSD" gorm:"-"`
	Quantity   int            `json:"quantity" binding:"required"`
	Status     string         `json:"status"`
	Images     []ListingImage `json:"images" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// DerivePriceUSD fills the USD display price from the LRD price at the
// given exchange rate. PriceUSD is derived, never stored.
func (l *Listing) DerivePriceUSD(exchangeRate float64) {
	l.PriceUSD = ToUSD(l.PriceLRD, exchangeRate)
}

// cropCategories maps crop names to their market category. Crops missing
// from the table fall under "other".
var cropCategories = map[string]string{
	"rice":         "grains",
	"corn":         "grains",
	"fonio":        "grains",
	"cassava":      "tubers",
	"sweet potato": "tubers",
	"yam":          "tubers",
	"eddoes":       "tubers",
	"pepper":       "vegetables",
	"bitterball":   "vegetables",
	"okra":         "vegetables",
	"collard":      "vegetables",
	"cucumber":     "vegetables",
	"tomato":       "vegetables",
	"plantain":     "fruits",
	"banana":       "fruits",
	"pineapple":    "fruits",
	"watermelon":   "fruits",
	"cocoa":        "cash crops",
	"coffee":       "cash crops",
	"rubber":       "cash crops",
	"palm oil":     "cash crops",
	"kola nut":     "cash crops",
}

func CategoryOf(cropName string) string {
	if category, ok := cropCategories[strings.ToLower(strings.TrimSpace(cropName))]; ok {
		return category
	}
	return "other"
}

const (
	SortNewest       = "newest"
	SortPriceAsc     = "price-asc"
	SortPriceDesc    = "price-desc"
	SortQuantityDesc = "quantity-desc"
)

type ListingFilter struct {
	Search   string
	County   string
	Category string
	MinPrice float64
	MaxPrice float64
	SortBy   string
}

// FilterListings filters and sorts a listing collection in memory. The shop
// catalog is small enough that the whole filtered list is returned at once,
// without pagination.
func FilterListings(listings []Listing, filter ListingFilter) []Listing {
	result := make([]Listing, 0, len(listings))
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	for _, listing := range listings {
		if search != "" &&
			!strings.Contains(strings.ToLower(listing.CropName), search) &&
			!strings.Contains(strings.ToLower(listing.FarmerName), search) {
			continue
		}
		if filter.County != "" && listing.County != filter.County {
			continue
		}
		if filter.Category != "" && CategoryOf(listing.CropName) != filter.Category {
			continue
		}
		if filter.MinPrice > 0 && listing.PriceLRD < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && listing.PriceLRD > filter.MaxPrice {
			continue
		}
		result = append(result, listing)
	}

	switch filter.SortBy {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].PriceLRD < result[j].PriceLRD })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].PriceLRD > result[j].PriceLRD })
	case SortQuantityDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Quantity > result[j].Quantity })
	default: // newest
		sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	}

	return result
}
