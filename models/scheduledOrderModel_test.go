package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidFrequency(t *testing.T) {
	assert.True(t, ValidFrequency(FrequencyWeekly))
	assert.True(t, ValidFrequency(FrequencyBiweekly))
	assert.True(t, ValidFrequency(FrequencyMonthly))
	assert.False(t, ValidFrequency("daily"))
	assert.False(t, ValidFrequency(""))
}

func TestNextDeliveryAfter(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, from.AddDate(0, 0, 7), NextDeliveryAfter(from, FrequencyWeekly))
	assert.Equal(t, from.AddDate(0, 0, 14), NextDeliveryAfter(from, FrequencyBiweekly))
	assert.Equal(t, time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), NextDeliveryAfter(from, FrequencyMonthly))

	// unknown frequency leaves the date alone
	assert.Equal(t, from, NextDeliveryAfter(from, "daily"))
}
