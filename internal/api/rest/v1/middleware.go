package v1

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
	headerRetryAfter         = "Retry-After"

	userContextKey  = "trifasicko.user"
	tokenContextKey = "trifasicko.token"
)

// RateLimit rejects clients that exceed the store's window with 429. Store
// failures let the request through.
func RateLimit(store ratelimit.Store, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ratelimit.Fingerprint(ctx.ClientIP(), ctx.GetHeader("User-Agent"), ctx.GetHeader("Accept-Language"))

		decision, err := store.Take(ctx.Request.Context(), key)
		if err != nil {
			log.Warn("rate limit store unavailable: ", err)
			ctx.Next()
			return
		}

		ctx.Header(headerRateLimitLimit, strconv.Itoa(decision.Limit))
		ctx.Header(headerRateLimitRemaining, strconv.Itoa(decision.Remaining))
		ctx.Header(headerRateLimitReset, strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			ctx.Header(headerRetryAfter, strconv.Itoa(seconds))
			message := "demasiadas solicitudes, inténtalo más tarde"
			if decision.Blocked {
				message = "cliente bloqueado temporalmente por exceso de solicitudes"
			}
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Message: message})
			return
		}

		ctx.Next()
	}
}

// RequireAuth resolves the bearer token into a user and stores it in the context
func RequireAuth(authService accounts.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		user, err := authService.Authenticate(ctx.Request.Context(), token)
		if err != nil {
			ctx.Abort()
			respondError(ctx, err)
			return
		}
		ctx.Set(userContextKey, user)
		ctx.Set(tokenContextKey, token)
		ctx.Next()
	}
}

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// currentUser returns the user stored by RequireAuth
func currentUser(ctx *gin.Context) *accounts.User {
	value, ok := ctx.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := value.(*accounts.User)
	return user
}
