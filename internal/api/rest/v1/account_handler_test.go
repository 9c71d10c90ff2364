//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountTestHandler() (AccountHandler, *MockAuthService, *MockProfileService) {
	auth := new(MockAuthService)
	profile := new(MockProfileService)
	return NewAccountHandler(auth, profile), auth, profile
}

func TestAccountHandler_Register(t *testing.T) {
	handler, auth, _ := newAccountTestHandler()
	user := testUser()

	auth.On("Register", mock.Anything, &accounts.Registration{
		Email: "ana@example.com", Password: "secreto123", DisplayName: "Ana",
	}).Return(user, nil).Once()
	auth.On("Register", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("failed to create user: %w", domain.ErrConflict)).Once()

	body := RegisterRequest{Email: "ana@example.com", Password: "secreto123", DisplayName: "Ana"}

	c, w := newJSONContext(t, http.MethodPost, "/auth/registro", body)
	handler.Register(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "hash")
	assert.False(t, decode[UserResponse](t, w).HasAvatar)

	c, w = newJSONContext(t, http.MethodPost, "/auth/registro", body)
	handler.Register(c)
	assert.Equal(t, http.StatusConflict, w.Code)

	auth.AssertExpectations(t)
}

func TestAccountHandler_Login(t *testing.T) {
	handler, auth, _ := newAccountTestHandler()

	expires := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	auth.On("Login", mock.Anything, "ana@example.com", "secreto123").
		Return(&accounts.Session{Token: "tok", ExpiresAt: expires}, nil)
	auth.On("Login", mock.Anything, "ana@example.com", "otra-clave").
		Return(nil, accounts.ErrInvalidCredentials)

	c, w := newJSONContext(t, http.MethodPost, "/auth/login", LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	handler.Login(c)
	require.Equal(t, http.StatusOK, w.Code)
	session := decode[SessionResponse](t, w)
	assert.Equal(t, "tok", session.Token)
	assert.True(t, expires.Equal(session.ExpiresAt))

	c, w = newJSONContext(t, http.MethodPost, "/auth/login", LoginRequest{Email: "ana@example.com", Password: "otra-clave"})
	handler.Login(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c, w = newJSONContext(t, http.MethodPost, "/auth/login", LoginRequest{Email: "no-es-un-email"})
	handler.Login(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccountHandler_Logout(t *testing.T) {
	handler, auth, _ := newAccountTestHandler()

	auth.On("Logout", mock.Anything, "tok").Return(nil)

	c, w := newJSONContext(t, http.MethodPost, "/auth/logout", nil)
	c.Set(tokenContextKey, "tok")
	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	auth.AssertExpectations(t)
}

func TestAccountHandler_Profile(t *testing.T) {
	handler, _, profile := newAccountTestHandler()
	user := testUser()

	updated := *user
	updated.Phone = "612345678"
	profile.On("Get", mock.Anything, user.ID).Return(user, nil)
	profile.On("Update", mock.Anything, user.ID, mock.MatchedBy(func(u *accounts.ProfileUpdate) bool {
		return u.Phone != nil && *u.Phone == "+34 612 345 678"
	})).Return(&updated, nil)
	profile.On("Delete", mock.Anything, user.ID).Return(nil)

	c, w := newJSONContext(t, http.MethodGet, "/perfil", nil)
	withUser(c, user)
	handler.GetProfile(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.Email, decode[UserResponse](t, w).Email)

	c, w = newJSONContext(t, http.MethodPut, "/perfil", ProfileUpdateRequest{Phone: ptr("+34 612 345 678")})
	withUser(c, user)
	handler.UpdateProfile(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "612345678", decode[UserResponse](t, w).Phone)

	c, w = newJSONContext(t, http.MethodDelete, "/perfil", nil)
	withUser(c, user)
	handler.DeleteProfile(c)
	assert.Equal(t, http.StatusNoContent, w.Code)

	profile.AssertExpectations(t)
}

func TestAccountHandler_UploadAvatar(t *testing.T) {
	handler, _, profile := newAccountTestHandler()
	user := testUser()

	withAvatar := *user
	withAvatar.AvatarBlob = ptr(user.ID + "/" + uuid.NewString())
	profile.On("UploadAvatar", mock.Anything, user.ID, mock.Anything).Return(&withAvatar, nil)

	body, contentType := testutil.CreateFileForm(t, "avatar", "yo.png", "image/png", []byte("\x89PNG\r\n\x1a\n"))
	req := httptest.NewRequest(http.MethodPost, "/perfil/avatar", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	withUser(c, user)
	handler.UploadAvatar(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[UserResponse](t, w).HasAvatar)
	profile.AssertExpectations(t)
}

func TestAccountHandler_UploadAvatar_InvalidForms(t *testing.T) {
	handler, _, profile := newAccountTestHandler()

	c, w := newJSONContext(t, http.MethodPost, "/perfil/avatar", nil)
	withUser(c, testUser())
	handler.UploadAvatar(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid form data")

	body, contentType := testutil.CreateEmptyForm(t)
	req := httptest.NewRequest(http.MethodPost, "/perfil/avatar", body)
	req.Header.Set("Content-Type", contentType)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = req
	withUser(c, testUser())
	handler.UploadAvatar(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing avatar file")

	profile.AssertNotCalled(t, "UploadAvatar", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountHandler_DownloadAvatar(t *testing.T) {
	handler, _, profile := newAccountTestHandler()
	user := testUser()

	profile.On("DownloadAvatar", mock.Anything, user.ID).Return(&accounts.Avatar{Content: []byte("img"), ContentType: "image/png"}, nil)

	c, w := newJSONContext(t, http.MethodGet, "/perfil/avatar", nil)
	withUser(c, user)
	handler.DownloadAvatar(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "img", w.Body.String())
}
