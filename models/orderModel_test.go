package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{OrderPlaced, OrderConfirmed, true},
		{OrderPlaced, OrderCancelled, true},
		{OrderConfirmed, OrderOutForDelivery, true},
		{OrderConfirmed, OrderCancelled, true},
		{OrderOutForDelivery, OrderDelivered, true},

		// no skipping stages
		{OrderPlaced, OrderOutForDelivery, false},
		{OrderPlaced, OrderDelivered, false},
		{OrderConfirmed, OrderDelivered, false},

		// no going backward
		{OrderDelivered, OrderPlaced, false},
		{OrderOutForDelivery, OrderConfirmed, false},
		{OrderConfirmed, OrderPlaced, false},

		// cancellation only before dispatch
		{OrderOutForDelivery, OrderCancelled, false},
		{OrderDelivered, OrderCancelled, false},

		// terminal states absorb
		{OrderCancelled, OrderPlaced, false},
		{OrderCancelled, OrderConfirmed, false},
		{OrderDelivered, OrderDelivered, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+" to "+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestOrder_Transition_AppendsHistory(t *testing.T) {
	order := Order{Status: OrderPlaced}

	require.NoError(t, order.Transition(OrderConfirmed, "Confirmed by farmer"))
	require.NoError(t, order.Transition(OrderOutForDelivery, "On the truck"))

	assert.Equal(t, OrderOutForDelivery, order.Status)
	require.Len(t, order.StatusHistory, 2)
	assert.Equal(t, OrderConfirmed, order.StatusHistory[0].Status)
	assert.Equal(t, "Confirmed by farmer", order.StatusHistory[0].Note)
	assert.Equal(t, OrderOutForDelivery, order.StatusHistory[1].Status)
}

func TestOrder_Transition_RejectsIllegalMove(t *testing.T) {
	order := Order{Status: OrderDelivered}

	err := order.Transition(OrderPlaced, "")

	var illegal ErrIllegalTransition
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, OrderDelivered, illegal.From)
	assert.Equal(t, OrderPlaced, illegal.To)
	assert.Equal(t, OrderDelivered, order.Status)
	assert.Empty(t, order.StatusHistory)
}

func TestOrder_Transition_NeverTouchesItemsOrTotals(t *testing.T) {
	order := Order{
		Status:   OrderPlaced,
		TotalLRD: 790,
		TotalUSD: 4.18,
		Items: []OrderItem{
			{ListingID: 1, CropName: "rice", PriceLRD: 320, Quantity: 2},
		},
	}

	require.NoError(t, order.Transition(OrderConfirmed, ""))
	require.NoError(t, order.Transition(OrderOutForDelivery, ""))
	require.NoError(t, order.Transition(OrderDelivered, ""))

	assert.Equal(t, 790.0, order.TotalLRD)
	assert.Equal(t, 4.18, order.TotalUSD)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 320.0, order.Items[0].PriceLRD)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestComputeOrderTotals_DeliveryScenario(t *testing.T) {
	// rice at 320 LRD x2 with delivery, rate 189:
	// 640 + 150 = 790 LRD, 790/189 = 4.18 USD
	items := []OrderItem{
		{ListingID: 1, CropName: "rice", PriceLRD: 320, Quantity: 2, Fulfillment: FulfillmentDelivery},
	}

	totals := ComputeOrderTotals(items, 150, 189)

	assert.Equal(t, 640.0, totals.SubtotalLRD)
	assert.Equal(t, 150.0, totals.DeliveryFeeLRD)
	assert.Equal(t, 790.0, totals.TotalLRD)
	assert.Equal(t, 4.18, totals.TotalUSD)
}

func TestComputeOrderTotals_NoDeliveryFeeForPickup(t *testing.T) {
	items := []OrderItem{
		{PriceLRD: 320, Quantity: 2, Fulfillment: FulfillmentPickup},
		{PriceLRD: 450, Quantity: 1, Fulfillment: FulfillmentBulk},
	}

	totals := ComputeOrderTotals(items, 150, 189)

	assert.Equal(t, 1090.0, totals.SubtotalLRD)
	assert.Zero(t, totals.DeliveryFeeLRD)
	assert.Equal(t, 1090.0, totals.TotalLRD)
}

func TestComputeOrderTotals_FeeChargedOnceForMixedCart(t *testing.T) {
	items := []OrderItem{
		{PriceLRD: 100, Quantity: 1, Fulfillment: FulfillmentDelivery},
		{PriceLRD: 100, Quantity: 1, Fulfillment: FulfillmentDelivery},
		{PriceLRD: 100, Quantity: 1, Fulfillment: FulfillmentPickup},
	}

	totals := ComputeOrderTotals(items, 150, 189)

	assert.Equal(t, 150.0, totals.DeliveryFeeLRD)
	assert.Equal(t, 450.0, totals.TotalLRD)
}

func TestComputeOrderTotals_ZeroRateSkipsUSD(t *testing.T) {
	items := []OrderItem{{PriceLRD: 100, Quantity: 1}}

	totals := ComputeOrderTotals(items, 150, 0)

	assert.Zero(t, totals.TotalUSD)
}

func TestToUSD(t *testing.T) {
	assert.Equal(t, 4.18, ToUSD(790, 189))
	assert.Equal(t, 1.69, ToUSD(320, 189))
	assert.Zero(t, ToUSD(790, 0))
	assert.Zero(t, ToUSD(790, -1))
}

func deliveryCart() Cart {
	return Cart{
		UserID: 7,
		Items: []CartItem{
			{ListingID: 1, CropName: "rice", FarmerID: 3, FarmerName: "Moses Kollie", PriceLRD: 320, PriceUSD: 1.69, Quantity: 2, MaxQuantity: 10, Fulfillment: FulfillmentDelivery},
		},
	}
}

func TestPlaceOrder_FreezesCartAndClearsIt(t *testing.T) {
	cart := deliveryCart()
	address := &DeliveryAddress{County: "Bong", District: "Jorquelleh", ContactPhone: "0770123456"}

	order, err := PlaceOrder(&cart, address, 150, 189)
	require.NoError(t, err)

	assert.Equal(t, 7, order.UserID)
	assert.Equal(t, OrderPlaced, order.Status)
	assert.Equal(t, 640.0, order.SubtotalLRD)
	assert.Equal(t, 150.0, order.DeliveryFeeLRD)
	assert.Equal(t, 790.0, order.TotalLRD)
	assert.Equal(t, 4.18, order.TotalUSD)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 320.0, order.Items[0].PriceLRD)
	assert.Equal(t, 1.69, order.Items[0].PriceUSD)
	assert.Equal(t, "Moses Kollie", order.Items[0].FarmerName)
	assert.Contains(t, string(order.DeliveryAddress), "Bong")

	// placing the order empties the cart
	assert.Empty(t, cart.Items)
}

func TestPlaceOrder_EmptyCartRejected(t *testing.T) {
	cart := Cart{UserID: 7}

	_, err := PlaceOrder(&cart, nil, 150, 189)

	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrder_AddressRequiredForDelivery(t *testing.T) {
	cart := deliveryCart()

	_, err := PlaceOrder(&cart, nil, 150, 189)

	require.ErrorIs(t, err, ErrAddressRequired)
	// a failed placement leaves the cart as it was
	assert.Len(t, cart.Items, 1)
}

func TestPlaceOrder_PickupNeedsNoAddress(t *testing.T) {
	cart := Cart{
		UserID: 7,
		Items: []CartItem{
			{ListingID: 2, CropName: "pepper", PriceLRD: 450, Quantity: 1, MaxQuantity: 5, Fulfillment: FulfillmentPickup},
		},
	}

	order, err := PlaceOrder(&cart, nil, 150, 189)
	require.NoError(t, err)

	assert.Zero(t, order.DeliveryFeeLRD)
	assert.Empty(t, order.DeliveryAddress)
	assert.Empty(t, cart.Items)
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{OrderPlaced, OrderConfirmed, OrderOutForDelivery, OrderDelivered, OrderCancelled} {
		assert.True(t, ValidOrderStatus(status), status)
	}
	assert.False(t, ValidOrderStatus("pending"))
	assert.False(t, ValidOrderStatus(""))
}
