package v1

import (
	"fmt"
	"net/http"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/forum"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ForumHandler defines the forum endpoints
type ForumHandler interface {
	ListPosts(ctx *gin.Context)
	CreatePost(ctx *gin.Context)
	GetThread(ctx *gin.Context)
	Reply(ctx *gin.Context)
	DeletePost(ctx *gin.Context)
}

type forumHandler struct {
	forumService forum.ForumService
}

// NewForumHandler creates a new ForumHandler
func NewForumHandler(forumService forum.ForumService) ForumHandler {
	return &forumHandler{forumService: forumService}
}

// ListPosts fetches threads optionally filtered by category
func (handler *forumHandler) ListPosts(ctx *gin.Context) {
	query := forum.NewForumQuery()

	if category := ctx.Query("category"); len(category) > 0 {
		query.Category = category
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

	posts, err := handler.forumService.ListPosts(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := make([]ForumPostResponse, 0, len(posts))
	for _, post := range posts {
		listResponse = append(listResponse, newForumPostResponse(post))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// CreatePost opens a thread as the current user
func (handler *forumHandler) CreatePost(ctx *gin.Context) {
	var request ForumPostRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	user := currentUser(ctx)
	post, err := handler.forumService.CreatePost(ctx, &forum.ForumPost{
		AuthorID:   user.ID,
		AuthorName: user.DisplayName,
		Category:   request.Category,
		Title:      request.Title,
		Content:    request.Content,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newForumPostResponse(post))
}

// GetThread fetches a post with its replies
func (handler *forumHandler) GetThread(ctx *gin.Context) {
	thread, err := handler.forumService.GetThread(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	replies := make([]ForumReplyResponse, 0, len(thread.Replies))
	for _, reply := range thread.Replies {
		replies = append(replies, newForumReplyResponse(reply))
	}
	ctx.JSON(http.StatusOK, ThreadResponse{
		Post:    newForumPostResponse(thread.Post),
		Replies: replies,
	})
}

// Reply answers a thread as the current user
func (handler *forumHandler) Reply(ctx *gin.Context) {
	var request ForumReplyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	user := currentUser(ctx)
	reply, err := handler.forumService.Reply(ctx, &forum.ForumReply{
		PostID:     ctx.Param("id"),
		AuthorID:   user.ID,
		AuthorName: user.DisplayName,
		Content:    request.Content,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newForumReplyResponse(reply))
}

// DeletePost removes a thread opened by the current user
func (handler *forumHandler) DeletePost(ctx *gin.Context) {
	postID := ctx.Param("id")
	if err := handler.forumService.DeletePost(ctx, postID, currentUser(ctx).ID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted post with id %s", postID)})
}
