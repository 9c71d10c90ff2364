package v1

import (
	"fmt"
	"net/http"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/news"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// NewsHandler defines the news endpoints
type NewsHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Aggregate(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type newsHandler struct {
	newsService news.NewsService
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(newsService news.NewsService) NewsHandler {
	return &newsHandler{newsService: newsService}
}

// List fetches stored news, newest first
func (handler *newsHandler) List(ctx *gin.Context) {
	query := news.NewNewsQuery()

	if category := ctx.Query("category"); len(category) > 0 {
		query.Category = category
	}

	if source := ctx.Query("source"); len(source) > 0 {
		query.Source = source
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

	items, err := handler.newsService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := make([]NewsItemResponse, 0, len(items))
	for _, item := range items {
		listResponse = append(listResponse, newNewsItemResponse(item))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID fetches a news item by ID
func (handler *newsHandler) GetByID(ctx *gin.Context) {
	item, err := handler.newsService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newNewsItemResponse(item))
}

// Aggregate pulls every configured category from the news provider
func (handler *newsHandler) Aggregate(ctx *gin.Context) {
	result, err := handler.newsService.Aggregate(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	failed := result.FailedCategories
	if failed == nil {
		failed = []string{}
	}
	ctx.JSON(http.StatusOK, AggregationResponse{
		Fetched:          result.Fetched,
		Stored:           result.Stored,
		Duplicates:       result.Duplicates,
		FailedCategories: failed,
	})
}

// DeleteByID removes a news item by ID
func (handler *newsHandler) DeleteByID(ctx *gin.Context) {
	itemID := ctx.Param("id")
	if err := handler.newsService.DeleteByID(ctx, itemID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted news item with id %s", itemID)})
}
