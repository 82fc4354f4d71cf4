package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrAddressRequired = errors.New("a delivery address is required for delivery items")
)

const (
	OrderPlaced         = "placed"
	OrderConfirmed      = "confirmed"
	OrderOutForDelivery = "out-for-delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// ErrIllegalTransition is returned when an order status update would move
// the order backward or skip a stage.
type ErrIllegalTransition struct {
	From string
	To   string
}

func (e ErrIllegalTransition) Error() string {
	return fmt.Sprintf("illegal order status transition: %s -> %s", e.From, e.To)
}

// legalTransitions is the forward-only order lifecycle. Cancellation is
// allowed only before the order leaves the warehouse.
var legalTransitions = map[string][]string{
	OrderPlaced:         {OrderConfirmed, OrderCancelled},
	OrderConfirmed:      {OrderOutForDelivery, OrderCancelled},
	OrderOutForDelivery: {OrderDelivered},
	OrderDelivered:      {},
	OrderCancelled:      {},
}

func CanTransition(from, to string) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidOrderStatus(status string) bool {
	_, ok := legalTransitions[status]
	return ok
}

type OrderItem struct {
	gorm.Model
	OrderID     int     `json:"orderId"`
	ListingID   int     `json:"listingId"`
	CropName    string  `json:"cropName"`
	FarmerID    int     `json:"farmerId"`
	FarmerName  string  `json:"farmerName"`
	PriceLRD    float64 `json:"priceLRD"`
	PriceUSD    float64 `json:"priceUSD"`
	Quantity    int     `json:"quantity"`
	Fulfillment string  `json:"fulfillment"`
}

type OrderStatusEntry struct {
	gorm.Model
	OrderID int    `json:"orderId"`
	Status  string `json:"status"`
	Note    string `json:"note"`
}

type Order struct {
	gorm.Model
	OrderNumber     string             `json:"orderNumber" gorm:"uniqueIndex;size:64"`
	UserID          int                `json:"userId"`
	Status          string             `json:"status"`
	PaymentMethod   string             `json:"paymentMethod"`
	PaymentPhone    string             `json:"paymentPhone"`
	PaymentStatus   string             `json:"paymentStatus"`
	PaymentRef      string             `json:"paymentRef"`
	SubtotalLRD     float64            `json:"subtotalLRD"`
	DeliveryFeeLRD  float64            `json:"deliveryFeeLRD"`
	TotalLRD        float64            `json:"totalLRD"`
	TotalUSD        float64            `json:"totalUSD"`
	DeliveryAddress datatypes.JSON     `json:"deliveryAddress"`
	Items           []OrderItem        `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusHistory   []OrderStatusEntry `json:"statusHistory" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// Transition moves the order to newStatus and appends a history entry, or
// returns ErrIllegalTransition. Items and totals are never touched here;
// they are frozen at checkout.
func (o *Order) Transition(newStatus, note string) error {
	if !CanTransition(o.Status, newStatus) {
		return ErrIllegalTransition{From: o.Status, To: newStatus}
	}
	o.Status = newStatus
	o.StatusHistory = append(o.StatusHistory, OrderStatusEntry{
		OrderID: int(o.ID),
		Status:  newStatus,
		Note:    note,
	})
	return nil
}

type OrderTotals struct {
	SubtotalLRD    float64
	DeliveryFeeLRD float64
	TotalLRD       float64
	TotalUSD       float64
}

// ComputeOrderTotals sums unit price times quantity over the items, adds the
// flat delivery fee once if any item is fulfilled by delivery, and converts
// to USD at the given rate rounded to cents.
func ComputeOrderTotals(items []OrderItem, deliveryFee, exchangeRate float64) OrderTotals {
	totals := OrderTotals{}
	for _, item := range items {
		totals.SubtotalLRD += item.PriceLRD * float64(item.Quantity)
		if item.Fulfillment == FulfillmentDelivery {
			totals.DeliveryFeeLRD = deliveryFee
		}
	}
	totals.TotalLRD = totals.SubtotalLRD + totals.DeliveryFeeLRD
	totals.TotalUSD = ToUSD(totals.TotalLRD, exchangeRate)
	return totals
}

// ToUSD converts an LRD amount at the given exchange rate, rounded to cents.
// A zero or negative rate yields zero.
func ToUSD(lrd, exchangeRate float64) float64 {
	if exchangeRate <= 0 {
		return 0
	}
	return math.Round(lrd/exchangeRate*100) / 100
}

// PlaceOrder freezes the cart contents into a new order and clears the cart.
// The cart is left untouched when assembly fails: an empty cart or a missing
// address for a cart that contains delivery items is rejected. Payment fields
// and the order number are filled in by the caller after the charge succeeds.
func PlaceOrder(cart *Cart, address *DeliveryAddress, deliveryFee, exchangeRate float64) (Order, error) {
	if len(cart.Items) == 0 {
		return Order{}, ErrEmptyCart
	}
	if cart.HasDeliveryItem() && address == nil {
		return Order{}, ErrAddressRequired
	}

	items := make([]OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, OrderItem{
			ListingID:   item.ListingID,
			CropName:    item.CropName,
			FarmerID:    item.FarmerID,
			FarmerName:  item.FarmerName,
			PriceLRD:    item.PriceLRD,
			PriceUSD:    item.PriceUSD,
			Quantity:    item.Quantity,
			Fulfillment: item.Fulfillment,
		})
	}

	totals := ComputeOrderTotals(items, deliveryFee, exchangeRate)
	order := Order{
		UserID:         cart.UserID,
		Status:         OrderPlaced,
		SubtotalLRD:    totals.SubtotalLRD,
		DeliveryFeeLRD: totals.DeliveryFeeLRD,
		TotalLRD:       totals.TotalLRD,
		TotalUSD:       totals.TotalUSD,
		Items:          items,
	}

	if cart.HasDeliveryItem() {
		snapshot, err := json.Marshal(address)
		if err != nil {
			return Order{}, err
		}
		order.DeliveryAddress = datatypes.JSON(snapshot)
	}

	cart.Clear()
	return order, nil
}
