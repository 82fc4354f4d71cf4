package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func catalog() []Listing {
	day := 24 * time.Hour
	now := time.Now()
	return []Listing{
		{Model: gorm.Model{ID: 1, CreatedAt: now.Add(-3 * day)}, CropName: "Rice", FarmerName: "James Dolo", County: "Nimba", PriceLRD: 320, Quantity: 40},
		{Model: gorm.Model{ID: 2, CreatedAt: now.Add(-1 * day)}, CropName: "Pepper", FarmerName: "Martha Konneh", County: "Bong", PriceLRD: 450, Quantity: 12},
		{Model: gorm.Model{ID: 3, CreatedAt: now.Add(-2 * day)}, CropName: "Cassava", FarmerName: "James Dolo", County: "Nimba", PriceLRD: 150, Quantity: 80},
		{Model: gorm.Model{ID: 4, CreatedAt: now}, CropName: "Cocoa", FarmerName: "Sarah Togba", County: "Lofa", PriceLRD: 900, Quantity: 5},
	}
}

func ids(listings []Listing) []uint {
	out := make([]uint, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestListing_DerivePriceUSD(t *testing.T) {
	listing := Listing{CropName: "Rice", PriceLRD: 320}

	listing.DerivePriceUSD(189)
	assert.Equal(t, 1.69, listing.PriceUSD)

	// a broken rate yields zero rather than infinity
	listing.DerivePriceUSD(0)
	assert.Zero(t, listing.PriceUSD)
}

func TestListing_JSONCarriesBothCurrencies(t *testing.T) {
	listing := Listing{CropName: "Rice", PriceLRD: 320}
	listing.DerivePriceUSD(189)

	body, err := json.Marshal(listing)
	require.NoError(t, err)

	assert.Contains(t, string(body), `"priceLRD":320`)
	assert.Contains(t, string(body), `"priceUSD":1.69`)
}

func TestFilterListings_SearchMatchesCropOrFarmer(t *testing.T) {
	got := FilterListings(catalog(), ListingFilter{Search: "rice"})
	assert.Equal(t, []uint{1}, ids(got))

	// farmer name, case-insensitive substring
	got = FilterListings(catalog(), ListingFilter{Search: "james", SortBy: SortPriceAsc})
	assert.Equal(t, []uint{3, 1}, ids(got))
}

func TestFilterListings_CountyEquality(t *testing.T) {
	got := FilterListings(catalog(), ListingFilter{County: "Nimba", SortBy: SortPriceAsc})
	assert.Equal(t, []uint{3, 1}, ids(got))

	got = FilterListings(catalog(), ListingFilter{County: "Sinoe"})
	assert.Empty(t, got)
}

func TestFilterListings_CategoryLookup(t *testing.T) {
	got := FilterListings(catalog(), ListingFilter{Category: "grains"})
	assert.Equal(t, []uint{1}, ids(got))

	got = FilterListings(catalog(), ListingFilter{Category: "cash crops"})
	assert.Equal(t, []uint{4}, ids(got))
}

func TestFilterListings_PriceBounds(t *testing.T) {
	got := FilterListings(catalog(), ListingFilter{MinPrice: 200, MaxPrice: 500, SortBy: SortPriceAsc})
	assert.Equal(t, []uint{1, 2}, ids(got))
}

func TestFilterListings_Sorts(t *testing.T) {
	tests := []struct {
		sortBy string
		want   []uint
	}{
		{SortNewest, []uint{4, 2, 3, 1}},
		{SortPriceAsc, []uint{3, 1, 2, 4}},
		{SortPriceDesc, []uint{4, 2, 1, 3}},
		{SortQuantityDesc, []uint{3, 1, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			got := FilterListings(catalog(), ListingFilter{SortBy: tt.sortBy})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterListings_IsPure(t *testing.T) {
	input := catalog()
	before := ids(input)

	FilterListings(input, ListingFilter{SortBy: SortPriceDesc})

	require.Equal(t, before, ids(input))
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, "grains", CategoryOf("rice"))
	assert.Equal(t, "grains", CategoryOf("  Rice "))
	assert.Equal(t, "tubers", CategoryOf("Cassava"))
	assert.Equal(t, "cash crops", CategoryOf("palm oil"))
	assert.Equal(t, "other", CategoryOf("dragonfruit"))
}
