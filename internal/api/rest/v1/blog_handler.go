package v1

import (
	"fmt"
	"net/http"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/blog"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BlogHandler defines the blog endpoints
type BlogHandler interface {
	List(ctx *gin.Context)
	Publish(ctx *gin.Context)
	GetBySlug(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type blogHandler struct {
	blogService blog.BlogService
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(blogService blog.BlogService) BlogHandler {
	return &blogHandler{blogService: blogService}
}

// List fetches published posts, newest first
func (handler *blogHandler) List(ctx *gin.Context) {
	query := blog.NewBlogQuery()

	if tag := ctx.Query("tag"); len(tag) > 0 {
		query.Tag = tag
	}

	if authorID := ctx.Query("author_id"); len(authorID) > 0 {
		query.AuthorID = authorID
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

	posts, err := handler.blogService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := make([]BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		listResponse = append(listResponse, newBlogPostResponse(post))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Publish stores a post authored by the current user
func (handler *blogHandler) Publish(ctx *gin.Context) {
	var request BlogPostRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	post := &blog.BlogPost{
		Slug:    request.Slug,
		Title:   request.Title,
		Summary: request.Summary,
		Content: request.Content,
		Tags:    request.Tags,
	}
	published, err := handler.blogService.Publish(ctx, currentUser(ctx).ID, post)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newBlogPostResponse(published))
}

// GetBySlug fetches a post by its slug
func (handler *blogHandler) GetBySlug(ctx *gin.Context) {
	post, err := handler.blogService.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBlogPostResponse(post))
}

// DeleteByID removes a post written by the current user
func (handler *blogHandler) DeleteByID(ctx *gin.Context) {
	postID := ctx.Param("id")
	if err := handler.blogService.DeleteByID(ctx, postID, currentUser(ctx).ID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted post with id %s", postID)})
}
