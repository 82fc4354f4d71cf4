package providers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMarketPrices_Deterministic(t *testing.T) {
	p := New(0)

	first, err := p.GetMarketPrices(context.Background(), MarketPriceFilter{Crop: "rice"}, 189)
	require.NoError(t, err)
	second, err := p.GetMarketPrices(context.Background(), MarketPriceFilter{Crop: "rice"}, 189)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetMarketPrices_FilterByCropAndCounty(t *testing.T) {
	p := New(0)

	page, err := p.GetMarketPrices(context.Background(), MarketPriceFilter{Crop: "rice", County: "Nimba"}, 189)
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, "rice", page.Data[0].Crop)
	assert.Equal(t, "Nimba", page.Data[0].County)
	assert.Equal(t, 1, page.Total)
}

func TestGetMarketPrices_PriceWithinBand(t *testing.T) {
	p := New(0)

	page, err := p.GetMarketPrices(context.Background(), MarketPriceFilter{Crop: "rice", Limit: 100}, 189)
	require.NoError(t, err)
	require.NotEmpty(t, page.Data)

	for _, price := range page.Data {
		// rice base is 320 LRD, drift stays within ±15%
		assert.GreaterOrEqual(t, price.PriceLRD, 320*0.85-1)
		assert.LessOrEqual(t, price.PriceLRD, 320*1.15+1)
		assert.Contains(t, []string{"up", "down", "steady"}, price.Trend)
		assert.Equal(t, "25kg bag", price.Unit)
	}
}

func TestGetMarketPrices_Pagination(t *testing.T) {
	p := New(0)

	first, err := p.GetMarketPrices(context.Background(), MarketPriceFilter{Page: 1, Limit: 5}, 189)
	require.NoError(t, err)
	second, err := p.GetMarketPrices(context.Background(), MarketPriceFilter{Page: 2, Limit: 5}, 189)
	require.NoError(t, err)

	assert.Len(t, first.Data, 5)
	assert.Len(t, second.Data, 5)
	assert.NotEqual(t, first.Data, second.Data)
	assert.Equal(t, len(basePrices)*len(Counties), first.Total)

	// defaults applied
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, 2, second.Page)
}

func TestGetMarketPrices_PageBeyondEndIsEmpty(t *testing.T) {
	p := New(0)

	page, err := p.GetMarketPrices(context.Background(), MarketPriceFilter{Page: 999, Limit: 50}, 189)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestGetMarketPrices_CancelledContext(t *testing.T) {
	p := New(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.GetMarketPrices(ctx, MarketPriceFilter{}, 189)
	assert.ErrorIs(t, err, context.Canceled)
}
