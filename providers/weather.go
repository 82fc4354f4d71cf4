package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/Dannybanksrocks/agriconnect-api/models"
)

var conditions = []string{
	"sunny", "partly cloudy", "cloudy", "light rain", "heavy rain", "thunderstorm",
}

// GetWeatherForecast generates a 5-day forecast for a county. Each
// (county, day) pair is its own seeded stream, so the forecast for a given
// day does not change between reads.
func (p *Provider) GetWeatherForecast(ctx context.Context, county string) (models.Forecast, error) {
	if err := p.wait(ctx); err != nil {
		return models.Forecast{}, err
	}

	forecast := models.Forecast{County: county}
	today := time.Now().Truncate(24 * time.Hour)
	for i := 0; i < 5; i++ {
		day := today.AddDate(0, 0, i)
		rng := newSeededRand(fmt.Sprintf("%s|%s", county, day.Format("2006-01-02")))

		condition := conditions[rng.intn(len(conditions))]
		high := 26 + rng.intn(8)
		low := high - 4 - rng.intn(4)
		rain := rng.intn(101)
		if condition == "heavy rain" || condition == "thunderstorm" {
			rain = 60 + rng.intn(41)
		}

		forecast.Days = append(forecast.Days, models.ForecastDay{
			Date:        day,
			Condition:   condition,
			HighC:       high,
			LowC:        low,
			RainChance:  rain,
			HumidityPct: 65 + rng.intn(31),
		})
	}
	return forecast, nil
}
