package providers

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Dannybanksrocks/agriconnect-api/models"
)

// basePrices anchors the generated market price per crop, in LRD per unit.
var basePrices = map[string]struct {
	Price float64
	Unit  string
}{
	"rice":       {320, "25kg bag"},
	"cassava":    {150, "50kg bag"},
	"plantain":   {200, "bunch"},
	"pepper":     {450, "bucket"},
	"bitterball": {250, "bucket"},
	"okra":       {180, "bucket"},
	"corn":       {220, "50kg bag"},
	"palm oil":   {550, "5 gallon"},
	"cocoa":      {900, "50kg bag"},
	"coffee":     {850, "50kg bag"},
	"banana":     {150, "bunch"},
	"pineapple":  {120, "dozen"},
}

type MarketPriceFilter struct {
	Crop   string
	County string
	Page   int
	Limit  int
}

type MarketPricePage struct {
	Data  []models.MarketPrice `json:"data"`
	Total int                  `json:"total"`
	Page  int                  `json:"page"`
}

// priceFor derives this week's price for a crop in a county. The stream is
// keyed on the ISO week so prices hold steady for a week, then drift within
// ±15% of the base.
func priceFor(crop, county string, now time.Time, exchangeRate float64) models.MarketPrice {
	base, ok := basePrices[crop]
	if !ok {
		base.Price = 200
		base.Unit = "bag"
	}
	year, week := now.ISOWeek()
	rng := newSeededRand(fmt.Sprintf("%s|%s|%d-%d", crop, county, year, week))
	price := base.Price * (0.85 + rng.float64n(0.30))
	price = math.Round(price)

	prevYear, prevWeek := now.AddDate(0, 0, -7).ISOWeek()
	prevRng := newSeededRand(fmt.Sprintf("%s|%s|%d-%d", crop, county, prevYear, prevWeek))
	prev := math.Round(base.Price * (0.85 + prevRng.float64n(0.30)))

	trend := "steady"
	if price > prev {
		trend = "up"
	} else if price < prev {
		trend = "down"
	}

	priceUSD := models.ToUSD(price, exchangeRate)

	return models.MarketPrice{
		Crop:      crop,
		County:    county,
		PriceLRD:  price,
		PriceUSD:  priceUSD,
		Unit:      base.Unit,
		Trend:     trend,
		UpdatedAt: now.Truncate(24 * time.Hour),
	}
}

// GetMarketPrices generates the price board for every (crop, county) pair
// matching the filter, paginated.
func (p *Provider) GetMarketPrices(ctx context.Context, filter MarketPriceFilter, exchangeRate float64) (MarketPricePage, error) {
	if err := p.wait(ctx); err != nil {
		return MarketPricePage{}, err
	}

	now := time.Now()
	var all []models.MarketPrice
	for crop := range basePrices {
		if filter.Crop != "" && !strings.EqualFold(crop, filter.Crop) {
			continue
		}
		for _, county := range Counties {
			if filter.County != "" && county != filter.County {
				continue
			}
			all = append(all, priceFor(crop, county, now, exchangeRate))
		}
	}

	// Stable board order: by crop, then county.
	sortPrices(all)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}

	return MarketPricePage{Data: all[start:end], Total: len(all), Page: page}, nil
}

func sortPrices(prices []models.MarketPrice) {
	sort.Slice(prices, func(i, j int) bool {
		if prices[i].Crop != prices[j].Crop {
			return prices[i].Crop < prices[j].Crop
		}
		return prices[i].County < prices[j].County
	})
}
