package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

// ScheduledOrder is a recurring-order template cut from a cart snapshot.
// Cancelling one only flips Active; orders already placed from it are
// untouched.
type ScheduledOrder struct {
	gorm.Model
	UserID       int            `json:"userId"`
	Frequency    string         `json:"frequency"`
	NextDelivery time.Time      `json:"nextDelivery"`
	Items        datatypes.JSON `json:"items"`
	Active       bool           `json:"active"`
}

func ValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

// NextDeliveryAfter advances a delivery date by one frequency step.
func NextDeliveryAfter(from time.Time, frequency string) time.Time {
	switch frequency {
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyBiweekly:
		return from.AddDate(0, 0, 14)
	case FrequencyMonthly:
		return from.AddDate(0, 1, 0)
	}
	return from
}
