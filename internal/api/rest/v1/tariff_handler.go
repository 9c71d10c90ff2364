package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TariffHandler defines the catalog endpoints for electricity and internet tariffs
type TariffHandler interface {
	ListElectricity(ctx *gin.Context)
	CreateElectricity(ctx *gin.Context)
	GetElectricityByID(ctx *gin.Context)
	DeleteElectricityByID(ctx *gin.Context)
	ListInternet(ctx *gin.Context)
	CreateInternet(ctx *gin.Context)
	GetInternetByID(ctx *gin.Context)
	DeleteInternetByID(ctx *gin.Context)
}

type tariffHandler struct {
	electricityService tariffs.ElectricityCatalogService
	internetService    tariffs.InternetCatalogService
}

// NewTariffHandler creates a new TariffHandler
func NewTariffHandler(electricityService tariffs.ElectricityCatalogService, internetService tariffs.InternetCatalogService) TariffHandler {
	return &tariffHandler{
		electricityService: electricityService,
		internetService:    internetService,
	}
}

// ListElectricity lists electricity tariffs optionally with query parameters
func (handler *tariffHandler) ListElectricity(ctx *gin.Context) {
	query := tariffs.NewElectricityTariffQuery()

	if provider := ctx.Query("provider"); len(provider) > 0 {
		query.Provider = provider
	}

	if green := ctx.Query("green_energy"); len(green) > 0 {
		value, err := strconv.ParseBool(green)
		if err != nil {
			respondBadRequest(ctx, fmt.Sprintf("invalid green_energy value: %s", green))
			return
		}
		query.GreenEnergy = &value
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sort_by"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sort_order"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	items, err := handler.electricityService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := make([]ElectricityTariffResponse, 0, len(items))
	for _, item := range items {
		listResponse = append(listResponse, newElectricityTariffResponse(item))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// CreateElectricity adds an electricity tariff to the catalog
func (handler *tariffHandler) CreateElectricity(ctx *gin.Context) {
	var request ElectricityTariffRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	created, err := handler.electricityService.Create(ctx, request.ToDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newElectricityTariffResponse(created))
}

// GetElectricityByID fetches an electricity tariff by ID
func (handler *tariffHandler) GetElectricityByID(ctx *gin.Context) {
	tariff, err := handler.electricityService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newElectricityTariffResponse(tariff))
}

// DeleteElectricityByID removes an electricity tariff by ID
func (handler *tariffHandler) DeleteElectricityByID(ctx *gin.Context) {
	tariffID := ctx.Param("id")
	if err := handler.electricityService.DeleteByID(ctx, tariffID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted tariff with id %s", tariffID)})
}

// ListInternet lists internet tariffs optionally with query parameters
func (handler *tariffHandler) ListInternet(ctx *gin.Context) {
	query := tariffs.NewInternetTariffQuery()

	if provider := ctx.Query("provider"); len(provider) > 0 {
		query.Provider = provider
	}

	if kind := ctx.Query("type"); len(kind) > 0 {
		query.Type = kind
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sort_by"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sort_order"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	items, err := handler.internetService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := make([]InternetTariffResponse, 0, len(items))
	for _, item := range items {
		listResponse = append(listResponse, newInternetTariffResponse(item))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// CreateInternet adds an internet tariff to the catalog
func (handler *tariffHandler) CreateInternet(ctx *gin.Context) {
	var request InternetTariffRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	created, err := handler.internetService.Create(ctx, request.ToDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newInternetTariffResponse(created))
}

// GetInternetByID fetches an internet tariff by ID
func (handler *tariffHandler) GetInternetByID(ctx *gin.Context) {
	tariff, err := handler.internetService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newInternetTariffResponse(tariff))
}

// DeleteInternetByID removes an internet tariff by ID
func (handler *tariffHandler) DeleteInternetByID(ctx *gin.Context) {
	tariffID := ctx.Param("id")
	if err := handler.internetService.DeleteByID(ctx, tariffID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted tariff with id %s", tariffID)})
}
