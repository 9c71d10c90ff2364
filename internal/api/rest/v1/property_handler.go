package v1

import (
	"fmt"
	"net/http"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/properties"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PropertyHandler defines the real estate listing endpoints
type PropertyHandler interface {
	Search(ctx *gin.Context)
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type propertyHandler struct {
	propertyService properties.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService properties.PropertyService) PropertyHandler {
	return &propertyHandler{propertyService: propertyService}
}

// Search lists properties matching the query parameters
func (handler *propertyHandler) Search(ctx *gin.Context) {
	query := properties.NewPropertyQuery()

	if operation := ctx.Query("operation"); len(operation) > 0 {
		query.Operation = operation
	}

	if propertyType := ctx.Query("property_type"); len(propertyType) > 0 {
		query.PropertyType = propertyType
	}

	if city := ctx.Query("city"); len(city) > 0 {
		query.City = city
	}

	if postalCode := ctx.Query("postal_code"); len(postalCode) > 0 {
		query.PostalCode = postalCode
	}

	if minPrice := ctx.Query("min_price"); len(minPrice) > 0 {
		query.MinPrice = utils.ConvertToFloat64(minPrice)
	}

	if maxPrice := ctx.Query("max_price"); len(maxPrice) > 0 {
		query.MaxPrice = utils.ConvertToFloat64(maxPrice)
	}

	if minRooms := ctx.Query("min_rooms"); len(minRooms) > 0 {
		query.MinRooms = utils.ConvertToInt(minRooms)
	}

	if ownerID := ctx.Query("owner_id"); len(ownerID) > 0 {
		query.OwnerID = ownerID
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

	items, err := handler.propertyService.Search(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := make([]PropertyResponse, 0, len(items))
	for _, item := range items {
		listResponse = append(listResponse, newPropertyResponse(item))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Create publishes a listing owned by the current user
func (handler *propertyHandler) Create(ctx *gin.Context) {
	var request PropertyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	created, err := handler.propertyService.Create(ctx, currentUser(ctx).ID, request.ToDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newPropertyResponse(created))
}

// GetByID fetches a listing by ID
func (handler *propertyHandler) GetByID(ctx *gin.Context) {
	property, err := handler.propertyService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newPropertyResponse(property))
}

// DeleteByID removes a listing owned by the current user
func (handler *propertyHandler) DeleteByID(ctx *gin.Context) {
	propertyID := ctx.Param("id")
	if err := handler.propertyService.DeleteByID(ctx, propertyID, currentUser(ctx).ID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted property with id %s", propertyID)})
}
