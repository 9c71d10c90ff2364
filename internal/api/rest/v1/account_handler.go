package v1

import (
	"fmt"
	"net/http"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/app"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// AccountHandler defines the authentication and profile endpoints
type AccountHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	GetProfile(ctx *gin.Context)
	UpdateProfile(ctx *gin.Context)
	DeleteProfile(ctx *gin.Context)
	UploadAvatar(ctx *gin.Context)
	DownloadAvatar(ctx *gin.Context)
}

type accountHandler struct {
	authService    accounts.AuthService
	profileService accounts.ProfileService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(authService accounts.AuthService, profileService accounts.ProfileService) AccountHandler {
	return &accountHandler{
		authService:    authService,
		profileService: profileService,
	}
}

// Register creates an account
func (handler *accountHandler) Register(ctx *gin.Context) {
	var request RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	user, err := handler.authService.Register(ctx, request.ToDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// Login exchanges credentials for a bearer token
func (handler *accountHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	session, err := handler.authService.Login(ctx, request.Email, request.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, SessionResponse{Token: session.Token, ExpiresAt: session.ExpiresAt})
}

// Logout revokes the bearer token of the request
func (handler *accountHandler) Logout(ctx *gin.Context) {
	if err := handler.authService.Logout(ctx, ctx.GetString(tokenContextKey)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "sesión cerrada"})
}

// GetProfile returns the current user's profile
func (handler *accountHandler) GetProfile(ctx *gin.Context) {
	user, err := handler.profileService.Get(ctx, currentUser(ctx).ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateProfile changes the editable fields of the current user's profile
func (handler *accountHandler) UpdateProfile(ctx *gin.Context) {
	var request ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	user, err := handler.profileService.Update(ctx, currentUser(ctx).ID, request.ToDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteProfile removes the current user with its sessions and avatar
func (handler *accountHandler) DeleteProfile(ctx *gin.Context) {
	userID := currentUser(ctx).ID
	if err := handler.profileService.Delete(ctx, userID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted user with id %s", userID)})
}

// UploadAvatar stores the multipart "avatar" file as the profile picture
func (handler *accountHandler) UploadAvatar(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondBadRequest(ctx, "invalid form data")
		return
	}

	if len(form.File[app.AvatarFormField]) == 0 {
		respondBadRequest(ctx, fmt.Sprintf("missing %s file", app.AvatarFormField))
		return
	}

	user, err := handler.profileService.UploadAvatar(ctx, currentUser(ctx).ID, form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// DownloadAvatar returns the current user's profile picture
func (handler *accountHandler) DownloadAvatar(ctx *gin.Context) {
	avatar, err := handler.profileService.DownloadAvatar(ctx, currentUser(ctx).ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, avatar.ContentType, avatar.Content)
}
