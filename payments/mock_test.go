package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGateway_ApprovesByDefault(t *testing.T) {
	gateway := NewMockGateway(0)

	receipt, err := gateway.Charge(context.Background(), ChargeRequest{
		Reference: "AGC-test1234",
		Phone:     "0770123456",
		AmountLRD: 790,
	})

	require.NoError(t, err)
	assert.Equal(t, "AGC-test1234", receipt.Reference)
	assert.Equal(t, "paid", receipt.Status)
	assert.False(t, receipt.PaidAt.IsZero())
}

func TestMockGateway_FaultInjection(t *testing.T) {
	gateway := NewMockGateway(0)
	gateway.Fail = func(req ChargeRequest) error {
		if req.AmountLRD > 500 {
			return ErrDeclined
		}
		return nil
	}

	_, err := gateway.Charge(context.Background(), ChargeRequest{AmountLRD: 790})
	assert.ErrorIs(t, err, ErrDeclined)

	receipt, err := gateway.Charge(context.Background(), ChargeRequest{AmountLRD: 100})
	require.NoError(t, err)
	assert.Equal(t, "paid", receipt.Status)
}

func TestMockGateway_RespectsContextDuringDelay(t *testing.T) {
	gateway := NewMockGateway(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := gateway.Charge(ctx, ChargeRequest{AmountLRD: 100})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestValidPaymentPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0770123456", true},
		{"77012345", true},
		{"0886123456", true},
		{"1234567", false},        // too short
		{"012345678901", false},   // too long
		{"+2310770123456", false}, // plus sign not accepted at checkout
		{"077012345a", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPaymentPhone(tt.phone), tt.phone)
	}
}

func TestValidMethod(t *testing.T) {
	assert.True(t, ValidMethod(MethodMobileMoney))
	assert.True(t, ValidMethod(MethodCashOnDelivery))
	assert.False(t, ValidMethod("barter"))
	assert.False(t, ValidMethod(""))
}
