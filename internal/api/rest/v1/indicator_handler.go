package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/indicators"

	"github.com/gin-gonic/gin"
)

// IndicatorHandler serves the grid price and connection speed indicators
type IndicatorHandler interface {
	DailyPrices(ctx *gin.Context)
	SpeedReport(ctx *gin.Context)
}

type indicatorHandler struct {
	priceService indicators.PriceService
	speedService indicators.SpeedService
}

// NewIndicatorHandler creates a new IndicatorHandler
func NewIndicatorHandler(priceService indicators.PriceService, speedService indicators.SpeedService) IndicatorHandler {
	return &indicatorHandler{
		priceService: priceService,
		speedService: speedService,
	}
}

// DailyPrices returns hourly prices for ?fecha=YYYY-MM-DD, today when omitted
func (handler *indicatorHandler) DailyPrices(ctx *gin.Context) {
	day := time.Now()
	if fecha := ctx.Query("fecha"); len(fecha) > 0 {
		parsed, err := time.ParseInLocation(time.DateOnly, fecha, time.Local)
		if err != nil {
			respondBadRequest(ctx, fmt.Sprintf("invalid fecha %q, expected YYYY-MM-DD", fecha))
			return
		}
		day = parsed
	}

	prices, err := handler.priceService.DailyPrices(ctx, day)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newDailyPricesResponse(prices))
}

// SpeedReport returns provider speeds for ?codigo_postal=
func (handler *indicatorHandler) SpeedReport(ctx *gin.Context) {
	postalCode := ctx.Query("codigo_postal")
	if len(postalCode) == 0 {
		respondBadRequest(ctx, "codigo_postal is required")
		return
	}

	report, err := handler.speedService.Report(ctx, postalCode)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSpeedReportResponse(report))
}
