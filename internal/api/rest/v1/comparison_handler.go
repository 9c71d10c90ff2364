package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ComparisonHandler defines the tariff calculator and comparator endpoints
type ComparisonHandler interface {
	CompareElectricity(ctx *gin.Context)
	ElectricityCost(ctx *gin.Context)
	ExportElectricity(ctx *gin.Context)
	CompareInternet(ctx *gin.Context)
	ExportInternet(ctx *gin.Context)
	Savings(ctx *gin.Context)
}

type comparisonHandler struct {
	electricityService tariffs.ElectricityCatalogService
	internetService    tariffs.InternetCatalogService
	exporter           tariffs.QuoteExporter
}

// NewComparisonHandler creates a new ComparisonHandler
func NewComparisonHandler(electricityService tariffs.ElectricityCatalogService, internetService tariffs.InternetCatalogService, exporter tariffs.QuoteExporter) ComparisonHandler {
	return &comparisonHandler{
		electricityService: electricityService,
		internetService:    internetService,
		exporter:           exporter,
	}
}

// CompareElectricity ranks the stored electricity tariffs for a usage
func (handler *comparisonHandler) CompareElectricity(ctx *gin.Context) {
	quotes, ok := handler.electricityQuotes(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newElectricityQuoteResponses(quotes))
}

// ExportElectricity returns the electricity comparison as a spreadsheet
func (handler *comparisonHandler) ExportElectricity(ctx *gin.Context) {
	quotes, ok := handler.electricityQuotes(ctx)
	if !ok {
		return
	}

	content, err := handler.exporter.ExportElectricity(quotes)
	if err != nil {
		respondError(ctx, err)
		return
	}
	handler.attachment(ctx, "comparativa-luz", content)
}

func (handler *comparisonHandler) electricityQuotes(ctx *gin.Context) ([]tariffs.ElectricityQuote, bool) {
	var request ElectricityComparisonRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return nil, false
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return nil, false
	}

	quotes, err := handler.electricityService.Compare(ctx, request.ToDomain())
	if err != nil {
		respondError(ctx, err)
		return nil, false
	}
	return quotes, true
}

// ElectricityCost prices an inline tariff without touching the catalog
func (handler *comparisonHandler) ElectricityCost(ctx *gin.Context) {
	var request CostRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	cost := tariffs.ElectricityCost(request.Tariff.ToDomain(), request.Usage.toDomain())
	ctx.JSON(http.StatusOK, newCostBreakdownResponse(cost))
}

// CompareInternet ranks the stored internet tariffs
func (handler *comparisonHandler) CompareInternet(ctx *gin.Context) {
	quotes, ok := handler.internetQuotes(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newInternetQuoteResponses(quotes))
}

// ExportInternet returns the internet comparison as a spreadsheet
func (handler *comparisonHandler) ExportInternet(ctx *gin.Context) {
	quotes, ok := handler.internetQuotes(ctx)
	if !ok {
		return
	}

	content, err := handler.exporter.ExportInternet(quotes)
	if err != nil {
		respondError(ctx, err)
		return
	}
	handler.attachment(ctx, "comparativa-internet", content)
}

func (handler *comparisonHandler) internetQuotes(ctx *gin.Context) ([]tariffs.InternetQuote, bool) {
	var request InternetComparisonRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return nil, false
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return nil, false
	}

	quotes, err := handler.internetService.Compare(ctx, request.ToDomain())
	if err != nil {
		respondError(ctx, err)
		return nil, false
	}
	return quotes, true
}

// Savings compares a current and a new monthly bill
func (handler *comparisonHandler) Savings(ctx *gin.Context) {
	var request SavingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SavingsResponse{
		MonthlySavings: utils.Round2(request.CurrentMonthlyCost - request.NewMonthlyCost),
		AnnualSavings:  tariffs.AnnualSavings(request.CurrentMonthlyCost, request.NewMonthlyCost),
	})
}

func (handler *comparisonHandler) attachment(ctx *gin.Context, name string, content []byte) {
	fileName := fmt.Sprintf("%s-%s%s", name, time.Now().Format(time.DateOnly), handler.exporter.FileExtension())
	ctx.Header("Content-Disposition", "attachment; filename="+fileName)
	ctx.Data(http.StatusOK, handler.exporter.ContentType(), content)
}
