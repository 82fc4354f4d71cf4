package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dannybanksrocks/agriconnect-api/providers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A request cancelled while its price fetch is in flight must not poison
// coalesced callers: the flight runs detached from the request context.
func TestGetMarketPrices_SurvivesCancelledRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	original := MarketProvider
	MarketProvider = providers.New(10 * time.Millisecond)
	defer func() { MarketProvider = original }()

	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/market/prices?crop=rice&county=Bong", nil).WithContext(reqCtx)

	GetMarketPrices(ctx)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total":1`)
}
