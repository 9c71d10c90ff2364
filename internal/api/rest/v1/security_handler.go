package v1

import (
	"net/http"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/security"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SecurityHandler defines the alarm catalog and coverage endpoints
type SecurityHandler interface {
	ListSystems(ctx *gin.Context)
	Coverage(ctx *gin.Context)
	Sync(ctx *gin.Context)
}

type securityHandler struct {
	securityService security.SecurityService
}

// NewSecurityHandler creates a new SecurityHandler
func NewSecurityHandler(securityService security.SecurityService) SecurityHandler {
	return &securityHandler{securityService: securityService}
}

// ListSystems lists the stored security systems
func (handler *securityHandler) ListSystems(ctx *gin.Context) {
	query := security.NewSecuritySystemQuery()

	if kind := ctx.Query("type"); len(kind) > 0 {
		query.Type = kind
	}

	if provider := ctx.Query("provider"); len(provider) > 0 {
		query.Provider = provider
	}

	if maxFee := ctx.Query("max_monthly_fee"); len(maxFee) > 0 {
		query.MaxMonthlyFee = utils.ConvertToFloat64(maxFee)
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	if err := query.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	systems, err := handler.securityService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := make([]SecuritySystemResponse, 0, len(systems))
	for _, system := range systems {
		listResponse = append(listResponse, newSecuritySystemResponse(system))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Coverage reports which providers install in ?codigo_postal=
func (handler *securityHandler) Coverage(ctx *gin.Context) {
	postalCode := ctx.Query("codigo_postal")
	if len(postalCode) == 0 {
		respondBadRequest(ctx, "codigo_postal is required")
		return
	}

	coverage, err := handler.securityService.Coverage(ctx, postalCode)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newCoverageResponse(coverage))
}

// Sync refreshes the catalog from the security provider API
func (handler *securityHandler) Sync(ctx *gin.Context) {
	result, err := handler.securityService.Sync(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, SyncResponse{Count: result.Count, Source: result.Source})
}
