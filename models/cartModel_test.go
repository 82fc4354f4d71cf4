package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func riceItem(qty int) CartItem {
	return CartItem{
		ListingID:   1,
		CropName:    "rice",
		PriceLRD:    320,
		PriceUSD:    1.69,
		Quantity:    qty,
		MaxQuantity: 10,
		Fulfillment: FulfillmentDelivery,
	}
}

func TestCart_AddItem_Appends(t *testing.T) {
	cart := Cart{}
	cart.AddItem(riceItem(2))

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, FulfillmentDelivery, cart.Items[0].Fulfillment)
}

func TestCart_AddItem_MergesByListing(t *testing.T) {
	cart := Cart{}
	cart.AddItem(riceItem(3))
	cart.AddItem(riceItem(4))

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestCart_AddItem_MergeClampsAtMax(t *testing.T) {
	cart := Cart{}
	cart.AddItem(riceItem(6))
	cart.AddItem(riceItem(6))

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 10, cart.Items[0].Quantity)
}

func TestCart_AddItem_OverAskSilentlyClamped(t *testing.T) {
	cart := Cart{}
	cart.AddItem(riceItem(50))

	assert.Equal(t, 10, cart.Items[0].Quantity)
}

func TestCart_AddItem_KeepsPriceSnapshot(t *testing.T) {
	cart := Cart{}
	cart.AddItem(riceItem(2))

	assert.Equal(t, 320.0, cart.Items[0].PriceLRD)
	assert.Equal(t, 1.69, cart.Items[0].PriceUSD)
}

func TestCart_AddItem_DefaultsFulfillmentToPickup(t *testing.T) {
	cart := Cart{}
	item := riceItem(1)
	item.Fulfillment = ""
	cart.AddItem(item)

	assert.Equal(t, FulfillmentPickup, cart.Items[0].Fulfillment)
}

func TestCart_SetQuantity_Clamps(t *testing.T) {
	tests := []struct {
		name string
		qty  int
		want int
	}{
		{"in range", 5, 5},
		{"below minimum", 0, 1},
		{"negative", -3, 1},
		{"above maximum", 11, 10},
		{"way above maximum", 1000, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := Cart{}
			cart.AddItem(riceItem(2))
			cart.SetQuantity(1, tt.qty)
			assert.Equal(t, tt.want, cart.Items[0].Quantity)
		})
	}
}

func TestCart_QuantityInvariantUnderMutationSequence(t *testing.T) {
	cart := Cart{}
	cart.AddItem(riceItem(9))
	cart.AddItem(riceItem(9))
	cart.SetQuantity(1, -5)
	cart.AddItem(riceItem(3))
	cart.SetQuantity(1, 99)

	for _, item := range cart.Items {
		assert.GreaterOrEqual(t, item.Quantity, 1)
		assert.LessOrEqual(t, item.Quantity, item.MaxQuantity)
	}
}

func TestCart_SetQuantity_NoOpWhenAbsent(t *testing.T) {
	cart := Cart{}
	cart.AddItem(riceItem(2))
	cart.SetQuantity(999, 5)

	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := Cart{}
	cart.AddItem(riceItem(2))
	cart.AddItem(CartItem{ListingID: 2, CropName: "pepper", PriceLRD: 450, Quantity: 1, MaxQuantity: 5})

	cart.RemoveItem(1)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].ListingID)

	// removing an absent listing is a no-op
	cart.RemoveItem(999)
	assert.Len(t, cart.Items, 1)
}

func TestCart_SetFulfillment(t *testing.T) {
	cart := Cart{}
	cart.AddItem(riceItem(2))

	cart.SetFulfillment(1, FulfillmentBulk)
	assert.Equal(t, FulfillmentBulk, cart.Items[0].Fulfillment)

	cart.SetFulfillment(999, FulfillmentPickup)
	assert.Equal(t, FulfillmentBulk, cart.Items[0].Fulfillment)
}

func TestCart_Clear(t *testing.T) {
	cart := Cart{}
	cart.AddItem(riceItem(2))
	cart.Clear()

	assert.Empty(t, cart.Items)
}

func TestCart_HasDeliveryItem(t *testing.T) {
	cart := Cart{}
	cart.AddItem(CartItem{ListingID: 2, Quantity: 1, MaxQuantity: 5, Fulfillment: FulfillmentPickup})
	assert.False(t, cart.HasDeliveryItem())

	cart.AddItem(riceItem(1))
	assert.True(t, cart.HasDeliveryItem())
}

func TestValidFulfillment(t *testing.T) {
	assert.True(t, ValidFulfillment(FulfillmentPickup))
	assert.True(t, ValidFulfillment(FulfillmentScheduled))
	assert.False(t, ValidFulfillment("drone"))
	assert.False(t, ValidFulfillment(""))
}
