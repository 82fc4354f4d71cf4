package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTips_Unfiltered(t *testing.T) {
	p := New(0)

	page, err := p.GetTips(context.Background(), TipFilter{})
	require.NoError(t, err)

	assert.Len(t, page.Data, len(tipSeed))
	assert.Equal(t, len(tipSeed), page.Total)
}

func TestGetTips_FilterByCategoryAndCrop(t *testing.T) {
	p := New(0)

	page, err := p.GetTips(context.Background(), TipFilter{Category: "post-harvest"})
	require.NoError(t, err)
	for _, tip := range page.Data {
		assert.Equal(t, "post-harvest", tip.Category)
	}
	assert.NotEmpty(t, page.Data)

	page, err = p.GetTips(context.Background(), TipFilter{Crop: "Rice"})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "rice", page.Data[0].Crop)
}

// An empty result must be an empty slice, not nil, so handlers render []
// instead of null.
func TestGetTips_NoMatchIsEmptySlice(t *testing.T) {
	p := New(0)

	page, err := p.GetTips(context.Background(), TipFilter{Category: "irrigation"})
	require.NoError(t, err)

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Zero(t, page.Total)
}

func TestGetAlerts_CountyFilter(t *testing.T) {
	p := New(0)

	alerts, err := p.GetAlerts(context.Background(), "Bong")
	require.NoError(t, err)

	// county-specific alerts for Bong plus the country-wide ones
	for _, alert := range alerts {
		if alert.County != "" {
			assert.Equal(t, "Bong", alert.County)
		}
		assert.False(t, alert.IssuedAt.IsZero())
	}
	assert.NotEmpty(t, alerts)
}

func TestGetAlerts_NoCountyReturnsAll(t *testing.T) {
	p := New(0)

	alerts, err := p.GetAlerts(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, alerts, len(alertSeed))
}
