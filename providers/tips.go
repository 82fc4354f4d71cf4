package providers

import (
	"context"
	"strings"
	"time"

	"github.com/Dannybanksrocks/agriconnect-api/models"
)

var tipSeed = []models.Tip{
	{ID: 1, Title: "Transplant rice after 21 days", Body: "Move lowland rice seedlings to the paddy three weeks after sowing for stronger tillering.", Category: "planting", Crop: "rice"},
	{ID: 2, Title: "Stake pepper early", Body: "Stake pepper plants before flowering to keep fruit off wet soil during the rains.", Category: "planting", Crop: "pepper"},
	{ID: 3, Title: "Rotate cassava plots", Body: "Do not replant cassava on the same plot two seasons running; rotate with legumes to rebuild the soil.", Category: "soil", Crop: "cassava"},
	{ID: 4, Title: "Dry cocoa on raised mats", Body: "Ferment cocoa beans six days, then sun-dry on raised mats to reach export moisture levels.", Category: "post-harvest", Crop: "cocoa"},
	{ID: 5, Title: "Watch for fall armyworm", Body: "Check corn whorls twice a week in the early season; handpick egg masses before they spread.", Category: "pests", Crop: "corn"},
	{ID: 6, Title: "Harvest palm at loose-fruit stage", Body: "Cut oil palm bunches when the first fruits drop naturally for the best oil yield.", Category: "post-harvest", Crop: "palm oil"},
	{ID: 7, Title: "Mulch plantain suckers", Body: "Mulch newly planted plantain suckers to hold moisture through the dry months.", Category: "soil", Crop: "plantain"},
	{ID: 8, Title: "Sell at the weekly market peak", Body: "Bring produce to market midweek when trader demand in Monrovia is strongest.", Category: "market", Crop: ""},
}

var alertSeed = []models.Alert{
	{ID: 1, Title: "Heavy rains expected", Body: "Above-normal rainfall forecast for coastal counties this week. Delay fertilizer application.", Severity: "warning", County: "Montserrado"},
	{ID: 2, Title: "Fall armyworm outbreak", Body: "Armyworm confirmed in corn farms around Gbarnga. Inspect fields and report infestations.", Severity: "critical", County: "Bong"},
	{ID: 3, Title: "Feeder road closure", Body: "The Ganta-Saclepea road is impassable after flooding. Plan alternate routes to market.", Severity: "info", County: "Nimba"},
	{ID: 4, Title: "Rice price support announced", Body: "The ministry announced a floor price for paddy rice this season.", Severity: "info", County: ""},
}

type TipFilter struct {
	Category string
	Crop     string
}

type TipPage struct {
	Data  []models.Tip `json:"data"`
	Total int          `json:"total"`
}

func (p *Provider) GetTips(ctx context.Context, filter TipFilter) (TipPage, error) {
	if err := p.wait(ctx); err != nil {
		return TipPage{}, err
	}

	// Always a slice, never nil: an empty match renders as [] in responses.
	matched := []models.Tip{}
	for _, tip := range tipSeed {
		if filter.Category != "" && tip.Category != filter.Category {
			continue
		}
		if filter.Crop != "" && !strings.EqualFold(tip.Crop, filter.Crop) {
			continue
		}
		matched = append(matched, tip)
	}
	return TipPage{Data: matched, Total: len(matched)}, nil
}

// GetAlerts returns active advisories, county-filtered. Alerts without a
// county apply everywhere.
func (p *Provider) GetAlerts(ctx context.Context, county string) ([]models.Alert, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	issued := time.Now().Truncate(24 * time.Hour)
	var matched []models.Alert
	for _, alert := range alertSeed {
		if county != "" && alert.County != "" && alert.County != county {
			continue
		}
		alert.IssuedAt = issued
		matched = append(matched, alert)
	}
	return matched, nil
}
