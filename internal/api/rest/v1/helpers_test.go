//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newJSONContext builds a test context whose request carries body encoded as JSON
func newJSONContext(t *testing.T, method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func withUser(c *gin.Context, user *accounts.User) {
	c.Set(userContextKey, user)
}

func testUser() *accounts.User {
	return &accounts.User{
		ID:              uuid.NewString(),
		Email:           "ana@example.com",
		DisplayName:     "Ana",
		PasswordHash:    "hash",
		DateTimeCreated: time.Now(),
	}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func ptr[T any](v T) *T {
	return &v
}
