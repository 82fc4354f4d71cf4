package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// MomoGateway charges through a hosted mobile-money collection API. It is
// selected when MOMO_API_URL and MOMO_API_KEY are set; otherwise the shop
// runs on the mock gateway.
type MomoGateway struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

func NewMomoGateway() (*MomoGateway, error) {
	baseURL := os.Getenv("MOMO_API_URL")
	apiKey := os.Getenv("MOMO_API_KEY")
	if baseURL == "" || apiKey == "" {
		return nil, fmt.Errorf("momo gateway credentials are not set")
	}

	return &MomoGateway{
		client:  resty.New().SetTimeout(30 * time.Second),
		baseURL: baseURL,
		apiKey:  apiKey,
	}, nil
}

func (g *MomoGateway) Charge(ctx context.Context, req ChargeRequest) (Receipt, error) {
	body := map[string]any{
		"reference":   req.Reference,
		"msisdn":      req.Phone,
		"amount":      req.AmountLRD,
		"currency":    "LRD",
		"description": req.Narration,
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+g.apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post(g.baseURL + "/collections/request-to-pay")

	if err != nil {
		return Receipt{}, fmt.Errorf("%w: %v", ErrGatewayError, err)
	}

	if resp.StatusCode() != 200 && resp.StatusCode() != 202 {
		return Receipt{}, fmt.Errorf("%w: status %d: %s", ErrGatewayError, resp.StatusCode(), resp.Body())
	}

	var result struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return Receipt{}, fmt.Errorf("%w: failed to parse charge response: %v", ErrGatewayError, err)
	}

	if result.Status == "DECLINED" || result.Status == "FAILED" {
		return Receipt{}, ErrDeclined
	}

	return Receipt{
		Reference: result.Reference,
		Status:    "paid",
		PaidAt:    time.Now(),
	}, nil
}
