package v1

import (
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/blog"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/forum"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/indicators"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/news"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/properties"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/security"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/ratelimit"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/recovery"

	"github.com/gin-gonic/gin"
)

// Services groups everything the version 1 handlers depend on
type Services struct {
	ElectricityCatalog tariffs.ElectricityCatalogService
	InternetCatalog    tariffs.InternetCatalogService
	QuoteExporter      tariffs.QuoteExporter
	Prices             indicators.PriceService
	Speeds             indicators.SpeedService
	News               news.NewsService
	Blog               blog.BlogService
	Forum              forum.ForumService
	Properties         properties.PropertyService
	Security           security.SecurityService
	Auth               accounts.AuthService
	Profile            accounts.ProfileService
	Notifications      *recovery.Broadcaster
}

// SetupRoutes sets up all the API routes for version 1. A nil limiter
// disables rate limiting.
func SetupRoutes(r *gin.Engine, services *Services, limiter ratelimit.Store, log logger.Logger) {
	v1 := r.Group(BasePath) // lookup in version file
	if limiter != nil {
		v1.Use(RateLimit(limiter, log))
	}

	auth := RequireAuth(services.Auth)

	// Comparator and calculator routes
	comparisonHandler := NewComparisonHandler(services.ElectricityCatalog, services.InternetCatalog, services.QuoteExporter)
	v1.POST("/comparador-luz", comparisonHandler.CompareElectricity)
	v1.POST("/comparador-luz/coste", comparisonHandler.ElectricityCost)
	v1.POST("/comparador-luz/export", comparisonHandler.ExportElectricity)
	v1.POST("/comparador-internet", comparisonHandler.CompareInternet)
	v1.POST("/comparador-internet/export", comparisonHandler.ExportInternet)
	v1.POST("/calculadora-ahorro", comparisonHandler.Savings)

	// Tariff catalog routes
	tariffHandler := NewTariffHandler(services.ElectricityCatalog, services.InternetCatalog)
	v1.GET("/tarifas/luz", tariffHandler.ListElectricity)
	v1.POST("/tarifas/luz", auth, tariffHandler.CreateElectricity)
	v1.GET("/tarifas/luz/:id", tariffHandler.GetElectricityByID)
	v1.DELETE("/tarifas/luz/:id", auth, tariffHandler.DeleteElectricityByID)
	v1.GET("/tarifas/internet", tariffHandler.ListInternet)
	v1.POST("/tarifas/internet", auth, tariffHandler.CreateInternet)
	v1.GET("/tarifas/internet/:id", tariffHandler.GetInternetByID)
	v1.DELETE("/tarifas/internet/:id", auth, tariffHandler.DeleteInternetByID)

	// Indicator routes
	indicatorHandler := NewIndicatorHandler(services.Prices, services.Speeds)
	v1.GET("/precios-luz", indicatorHandler.DailyPrices)
	v1.GET("/velocidad", indicatorHandler.SpeedReport)

	// News routes
	newsHandler := NewNewsHandler(services.News)
	v1.GET("/noticias", newsHandler.List)
	v1.GET("/noticias/:id", newsHandler.GetByID)
	v1.POST("/noticias/agregar", auth, newsHandler.Aggregate)
	v1.DELETE("/noticias/:id", auth, newsHandler.DeleteByID)

	// Blog routes
	blogHandler := NewBlogHandler(services.Blog)
	v1.GET("/blog", blogHandler.List)
	v1.POST("/blog", auth, blogHandler.Publish)
	v1.GET("/blog/:slug", blogHandler.GetBySlug)
	v1.DELETE("/blog/:id", auth, blogHandler.DeleteByID)

	// Forum routes
	forumHandler := NewForumHandler(services.Forum)
	v1.GET("/foro", forumHandler.ListPosts)
	v1.POST("/foro", auth, forumHandler.CreatePost)
	v1.GET("/foro/:id", forumHandler.GetThread)
	v1.DELETE("/foro/:id", auth, forumHandler.DeletePost)
	v1.POST("/foro/:id/respuestas", auth, forumHandler.Reply)

	// Account routes
	accountHandler := NewAccountHandler(services.Auth, services.Profile)
	v1.POST("/auth/registro", accountHandler.Register)
	v1.POST("/auth/login", accountHandler.Login)
	v1.POST("/auth/logout", auth, accountHandler.Logout)
	v1.GET("/perfil", auth, accountHandler.GetProfile)
	v1.PUT("/perfil", auth, accountHandler.UpdateProfile)
	v1.DELETE("/perfil", auth, accountHandler.DeleteProfile)
	v1.POST("/perfil/avatar", auth, accountHandler.UploadAvatar)
	v1.GET("/perfil/avatar", auth, accountHandler.DownloadAvatar)

	// Property routes
	propertyHandler := NewPropertyHandler(services.Properties)
	v1.GET("/inmuebles", propertyHandler.Search)
	v1.POST("/inmuebles", auth, propertyHandler.Create)
	v1.GET("/inmuebles/:id", propertyHandler.GetByID)
	v1.DELETE("/inmuebles/:id", auth, propertyHandler.DeleteByID)

	// Security routes
	securityHandler := NewSecurityHandler(services.Security)
	v1.GET("/seguridad/sistemas", securityHandler.ListSystems)
	v1.GET("/seguridad/cobertura", securityHandler.Coverage)
	v1.POST("/seguridad/sistemas/sincronizar", auth, securityHandler.Sync)

	// Notification routes
	notificationHandler := NewNotificationHandler(services.Notifications)
	v1.GET("/notificaciones", notificationHandler.Recent)
}
