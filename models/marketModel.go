package models

import "time"

// Market data records are generated, not stored; they carry no gorm.Model.

type MarketPrice struct {
	Crop      string    `json:"crop"`
	County    string    `json:"county"`
	PriceLRD  float64   `json:"priceLRD"`
	PriceUSD  float64   `json:"priceUSD"`
	Unit      string    `json:"unit"`
	Trend     string    `json:"trend"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ForecastDay struct {
	Date        time.Time `json:"date"`
	Condition   string    `json:"condition"`
	HighC       int       `json:"highC"`
	LowC        int       `json:"lowC"`
	RainChance  int       `json:"rainChance"`
	HumidityPct int       `json:"humidityPct"`
}

type Forecast struct {
	County string        `json:"county"`
	Days   []ForecastDay `json:"days"`
}

type Tip struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
	Crop     string `json:"crop"`
}

type Alert struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Severity string    `json:"severity"`
	County   string    `json:"county"`
	IssuedAt time.Time `json:"issuedAt"`
}
