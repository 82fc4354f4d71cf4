package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Dannybanksrocks/agriconnect-api/cache"
	"github.com/Dannybanksrocks/agriconnect-api/initializers"
	"github.com/Dannybanksrocks/agriconnect-api/models"
	"github.com/Dannybanksrocks/agriconnect-api/providers"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"
)

// MarketProvider generates the price board, forecasts, tips and alerts. The
// latency imitates the upstream data service; main may lower it.
var MarketProvider = providers.New(800 * time.Millisecond)

var marketGroup singleflight.Group

// GetMarketPrices serves the weekly price board, cache-aside per filter.
func GetMarketPrices(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	filter := providers.MarketPriceFilter{
		Crop:   ctx.Query("crop"),
		County: ctx.Query("county"),
		Page:   page,
		Limit:  limit,
	}

	cacheKey := fmt.Sprintf("%s%s|%s|%d|%d", cache.KeyMarketPrices, filter.Crop, filter.County, filter.Page, filter.Limit)

	// The flight runs on a detached context: cancelling the request that
	// started it must not fail every coalesced caller.
	v, err, _ := marketGroup.Do(cacheKey, func() (any, error) {
		flightCtx := context.Background()

		var cached providers.MarketPricePage
		if err := CatalogCache.Get(flightCtx, cacheKey, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			log.Println("Market cache read error:", err)
		}

		prices, err := MarketProvider.GetMarketPrices(flightCtx, filter, initializers.ExchangeRate())
		if err != nil {
			return nil, err
		}

		if err := CatalogCache.Set(flightCtx, cacheKey, prices); err != nil {
			log.Println("Market cache write error:", err)
		}
		return prices, nil
	})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch market prices", err)
		return
	}

	prices := v.(providers.MarketPricePage)
	ctx.JSON(http.StatusOK, gin.H{
		"data":  prices.Data,
		"total": prices.Total,
		"page":  prices.Page,
	})
}

func GetWeatherForecast(ctx *gin.Context) {
	county := ctx.Param("county")

	forecast, err := MarketProvider.GetWeatherForecast(ctx.Request.Context(), county)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch forecast", err)
		return
	}

	ctx.JSON(http.StatusOK, forecast)
}

func GetTips(ctx *gin.Context) {
	tips, err := MarketProvider.GetTips(ctx.Request.Context(), providers.TipFilter{
		Category: ctx.Query("category"),
		Crop:     ctx.Query("crop"),
	})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch tips", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data":  tips.Data,
		"total": tips.Total,
	})
}

func GetAlerts(ctx *gin.Context) {
	alerts, err := MarketProvider.GetAlerts(ctx.Request.Context(), ctx.Query("county"))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch alerts", err)
		return
	}

	if alerts == nil {
		alerts = []models.Alert{}
	}
	ctx.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// GetCounties lists the service area for county pickers.
func GetCounties(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"counties": providers.Counties})
}
