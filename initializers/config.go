package initializers

import (
	"os"
	"strconv"
)

const (
	defaultExchangeRate = 189.0
	defaultDeliveryFee  = 150.0
)

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

// ExchangeRate is the LRD per USD rate used for display conversions.
func ExchangeRate() float64 {
	return envFloat("EXCHANGE_RATE", defaultExchangeRate)
}

// DeliveryFee is the flat LRD fee charged once per order containing any
// delivery item.
func DeliveryFee() float64 {
	return envFloat("DELIVERY_FEE", defaultDeliveryFee)
}
