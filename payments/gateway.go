// Package payments charges mobile-money wallets for checkout. The default
// gateway is an in-process simulator; a Lonestar/Orange style HTTP client is
// available when real gateway credentials are configured.
package payments

import (
	"context"
	"errors"
	"regexp"
	"time"
)

var (
	ErrDeclined     = errors.New("payment declined")
	ErrGatewayError = errors.New("payment gateway error")
)

const (
	MethodMobileMoney    = "mobile-money"
	MethodCashOnDelivery = "cash-on-delivery"
)

// paymentPhonePattern is the wallet number format accepted at checkout.
var paymentPhonePattern = regexp.MustCompile(`^[0-9]{8,10}$`)

func ValidPaymentPhone(phone string) bool {
	return paymentPhonePattern.MatchString(phone)
}

func ValidMethod(method string) bool {
	return method == MethodMobileMoney || method == MethodCashOnDelivery
}

type ChargeRequest struct {
	Reference string
	Phone     string
	AmountLRD float64
	Narration string
}

type Receipt struct {
	Reference string
	Status    string
	PaidAt    time.Time
}

type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (Receipt, error)
}
