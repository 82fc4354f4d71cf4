package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWeatherForecast_FiveDaysDeterministic(t *testing.T) {
	p := New(0)

	first, err := p.GetWeatherForecast(context.Background(), "Bong")
	require.NoError(t, err)
	second, err := p.GetWeatherForecast(context.Background(), "Bong")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Bong", first.County)
	require.Len(t, first.Days, 5)
}

func TestGetWeatherForecast_PlausibleRanges(t *testing.T) {
	p := New(0)

	forecast, err := p.GetWeatherForecast(context.Background(), "Montserrado")
	require.NoError(t, err)

	for _, day := range forecast.Days {
		assert.Greater(t, day.HighC, day.LowC)
		assert.GreaterOrEqual(t, day.RainChance, 0)
		assert.LessOrEqual(t, day.RainChance, 100)
		assert.GreaterOrEqual(t, day.HumidityPct, 65)
		assert.Contains(t, conditions, day.Condition)
	}
}

func TestGetWeatherForecast_VariesByCounty(t *testing.T) {
	p := New(0)

	a, err := p.GetWeatherForecast(context.Background(), "Lofa")
	require.NoError(t, err)
	b, err := p.GetWeatherForecast(context.Background(), "Maryland")
	require.NoError(t, err)

	assert.NotEqual(t, a.Days, b.Days)
}
