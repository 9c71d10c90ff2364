//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/ratelimit"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLimitedEngine(t *testing.T, store ratelimit.Store) *gin.Engine {
	t.Helper()

	r := gin.New()
	r.Use(RateLimit(store, testutil.SetupTestLogger(t)))
	r.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, InfoResponse{Message: "pong"})
	})
	return r
}

func ping(r *gin.Engine, userAgent string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.7:5555"
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "es-ES")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_MemoryStore(t *testing.T) {
	store := ratelimit.NewMemoryStore(ratelimit.Settings{Max: 2, Window: time.Minute})
	r := newLimitedEngine(t, store)

	first := ping(r, "firefox")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, first.Header().Get("X-RateLimit-Reset"))

	require.Equal(t, http.StatusOK, ping(r, "firefox").Code)

	rejected := ping(r, "firefox")
	assert.Equal(t, http.StatusTooManyRequests, rejected.Code)
	assert.Equal(t, "0", rejected.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rejected.Header().Get("Retry-After"))

	// a different user agent is a different client
	assert.Equal(t, http.StatusOK, ping(r, "curl").Code)
}

func TestRateLimit_BlocksPersistentClient(t *testing.T) {
	store := ratelimit.NewMemoryStore(ratelimit.Settings{
		Max: 1, Window: time.Minute, BlockAfter: 2, BlockDuration: time.Hour,
	})
	r := newLimitedEngine(t, store)

	require.Equal(t, http.StatusOK, ping(r, "bot").Code)
	require.Equal(t, http.StatusTooManyRequests, ping(r, "bot").Code)

	blocked := ping(r, "bot")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Contains(t, blocked.Body.String(), "bloqueado")
	assert.Equal(t, "3600", blocked.Header().Get("Retry-After"))
}

func TestRateLimit_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := ratelimit.NewRedisStore(client, ratelimit.Settings{Max: 1, Window: time.Hour}, "test:rl:")
	r := newLimitedEngine(t, store)

	assert.Equal(t, http.StatusOK, ping(r, "firefox").Code)
	assert.Equal(t, http.StatusTooManyRequests, ping(r, "firefox").Code)
}

func TestRateLimit_FailsOpenOnStoreError(t *testing.T) {
	store := new(MockRateLimitStore)
	store.On("Take", mock.Anything, mock.Anything).Return(ratelimit.Decision{}, errors.New("redis: connection refused"))
	r := newLimitedEngine(t, store)

	w := ping(r, "firefox")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestRequireAuth(t *testing.T) {
	auth := new(MockAuthService)
	user := testUser()
	auth.On("Authenticate", mock.Anything, "good-token").Return(user, nil)
	auth.On("Authenticate", mock.Anything, "").Return(nil, domain.ErrUnauthorized)
	auth.On("Authenticate", mock.Anything, "expired").Return(nil, domain.ErrUnauthorized)

	r := gin.New()
	r.GET("/me", RequireAuth(auth), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, InfoResponse{Message: currentUser(ctx).ID + "|" + ctx.GetString(tokenContextKey)})
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid bearer", "Bearer good-token", http.StatusOK},
		{"lowercase scheme", "bearer good-token", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"basic scheme", "Basic good-token", http.StatusUnauthorized},
		{"expired", "Bearer expired", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Contains(t, w.Body.String(), user.ID+"|good-token")
			}
		})
	}
}

func TestCurrentUser_Missing(t *testing.T) {
	c, _ := newJSONContext(t, http.MethodGet, "/", nil)
	assert.Nil(t, currentUser(c))

	c.Set(userContextKey, &accounts.User{ID: "u"})
	assert.Equal(t, "u", currentUser(c).ID)
}
