// cmd/trifasicko-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/Montakatonix/trifasicko-conecta-sub000/internal/api/rest/v1"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/app"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/blog"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/forum"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/indicators"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/news"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/properties"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/security"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/connector"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/export"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/persistence"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/ratelimit"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/recovery"
	"github.com/gin-contrib/cors"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

const (
	notificationCapacity = 50
	sessionPurgeInterval = time.Hour
	rateLimitKeyPrefix   = "trifasicko:ratelimit:"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize application dependencies
	deps, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Background workers stop when run returns
	deps.startWorkers(ctx, log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services    *v1.Services
	limiter     ratelimit.Store
	memoryStore *ratelimit.MemoryStore
	redisClient *redis.Client
	sessionRepo accounts.SessionRepository
}

// repositories holds the gorm-backed repositories
type repositories struct {
	electricity tariffs.ElectricityTariffRepository
	internet    tariffs.InternetTariffRepository
	news        news.NewsRepository
	blog        blog.BlogRepository
	forum       forum.ForumRepository
	properties  properties.PropertyRepository
	security    security.SecuritySystemRepository
	users       accounts.UserRepository
	sessions    accounts.SessionRepository
}

// connectors holds the clients of third-party services
type connectors struct {
	newsFetcher    news.NewsFetcher
	priceClient    indicators.PriceClient
	speedClient    indicators.SpeedClient
	securityClient security.SecurityCatalogClient
	avatars        accounts.AvatarConnector
}

// initializeDependencies sets up all application components
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, err
	}

	// Seed catalogs on first start
	if _, err := app.SeedTariffs(ctx, repos.electricity, repos.internet, log); err != nil {
		return nil, fmt.Errorf("failed to seed tariffs: %w", err)
	}
	if _, err := app.SeedSecurity(ctx, repos.security, log); err != nil {
		return nil, fmt.Errorf("failed to seed security catalog: %w", err)
	}

	conns, err := initializeConnectors(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	broadcaster := recovery.NewBroadcaster(notificationCapacity)
	recoverer := recovery.NewRecoverer(recovery.DefaultStrategies(), broadcaster, log)

	services, err := initializeApplicationServices(cfg, repos, conns, recoverer, log)
	if err != nil {
		return nil, err
	}
	services.Notifications = broadcaster

	deps := &appDependencies{
		services:    services,
		sessionRepo: repos.sessions,
	}
	if err := initializeRateLimiter(ctx, cfg, deps, log); err != nil {
		return nil, err
	}

	return deps, nil
}

// initializeRepositories creates every repository on top of db
func initializeRepositories(db *gorm.DB, log logger.Logger) (*repositories, error) {
	var (
		repos repositories
		err   error
	)

	if repos.electricity, err = persistence.NewGormElectricityTariffRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create electricity tariff repository: %w", err)
	}
	if repos.internet, err = persistence.NewGormInternetTariffRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create internet tariff repository: %w", err)
	}
	if repos.news, err = persistence.NewGormNewsRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create news repository: %w", err)
	}
	if repos.blog, err = persistence.NewGormBlogRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create blog repository: %w", err)
	}
	if repos.forum, err = persistence.NewGormForumRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create forum repository: %w", err)
	}
	if repos.properties, err = persistence.NewGormPropertyRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create property repository: %w", err)
	}
	if repos.security, err = persistence.NewGormSecuritySystemRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create security system repository: %w", err)
	}
	if repos.users, err = persistence.NewGormUserRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	if repos.sessions, err = persistence.NewGormSessionRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	return &repos, nil
}

// initializeConnectors sets up the third-party API clients and avatar storage
func initializeConnectors(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*connectors, error) {
	var (
		conns connectors
		err   error
	)

	if conns.newsFetcher, err = connector.NewNewsAPIClient(&cfg.News, log); err != nil {
		return nil, fmt.Errorf("failed to create news client: %w", err)
	}
	if conns.priceClient, err = connector.NewESIOSPriceClient(&cfg.PriceIndicator, log); err != nil {
		return nil, fmt.Errorf("failed to create price indicator client: %w", err)
	}
	if conns.speedClient, err = connector.NewSpeedClient(&cfg.SpeedIndicator, log); err != nil {
		return nil, fmt.Errorf("failed to create speed indicator client: %w", err)
	}
	if conns.securityClient, err = connector.NewSecurityAPIClient(&cfg.SecurityAPI, log); err != nil {
		return nil, fmt.Errorf("failed to create security catalog client: %w", err)
	}
	if conns.avatars, err = connector.NewAvatarConnector(ctx, &cfg.AvatarStorage, log); err != nil {
		return nil, fmt.Errorf("failed to create avatar connector: %w", err)
	}

	log.Info("Connectors initialized successfully")
	return &conns, nil
}

// initializeApplicationServices creates all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	repos *repositories,
	conns *connectors,
	recoverer *recovery.Recoverer,
	log logger.Logger,
) (*v1.Services, error) {
	var (
		services = v1.Services{QuoteExporter: export.NewXLSXExporter()}
		err      error
	)

	if services.ElectricityCatalog, err = app.NewElectricityCatalogService(repos.electricity, log); err != nil {
		return nil, fmt.Errorf("failed to create electricity catalog service: %w", err)
	}
	if services.InternetCatalog, err = app.NewInternetCatalogService(repos.internet, log); err != nil {
		return nil, fmt.Errorf("failed to create internet catalog service: %w", err)
	}
	if services.Prices, err = app.NewPriceService(conns.priceClient, recoverer, log); err != nil {
		return nil, fmt.Errorf("failed to create price service: %w", err)
	}
	if services.Speeds, err = app.NewSpeedService(conns.speedClient, recoverer, log); err != nil {
		return nil, fmt.Errorf("failed to create speed service: %w", err)
	}
	if services.News, err = app.NewNewsService(repos.news, conns.newsFetcher, cfg.News.Categories, recoverer, log); err != nil {
		return nil, fmt.Errorf("failed to create news service: %w", err)
	}
	if services.Blog, err = app.NewBlogService(repos.blog, log); err != nil {
		return nil, fmt.Errorf("failed to create blog service: %w", err)
	}
	if services.Forum, err = app.NewForumService(repos.forum, log); err != nil {
		return nil, fmt.Errorf("failed to create forum service: %w", err)
	}
	if services.Properties, err = app.NewPropertyService(repos.properties, log); err != nil {
		return nil, fmt.Errorf("failed to create property service: %w", err)
	}
	if services.Security, err = app.NewSecurityService(repos.security, conns.securityClient, recoverer, log); err != nil {
		return nil, fmt.Errorf("failed to create security service: %w", err)
	}
	if services.Auth, err = app.NewAuthService(repos.users, repos.sessions, &cfg.Auth, log); err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	if services.Profile, err = app.NewProfileService(repos.users, repos.sessions, conns.avatars, log); err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}

	return &services, nil
}

// initializeRateLimiter picks the store named by the configuration. With
// rate limiting disabled deps.limiter stays nil.
func initializeRateLimiter(ctx context.Context, cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	if !cfg.RateLimit.Enabled {
		log.Warn("Rate limiting is disabled")
		return nil
	}

	settings := ratelimit.SettingsFrom(cfg.RateLimit)

	switch cfg.RateLimit.Store {
	case config.RateLimitStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		deps.redisClient = client
		deps.limiter = ratelimit.NewRedisStore(client, settings, rateLimitKeyPrefix)
	default:
		deps.memoryStore = ratelimit.NewMemoryStore(settings)
		deps.limiter = deps.memoryStore
	}

	log.Info("Rate limiter initialized with ", cfg.RateLimit.Store, " store")
	return nil
}

// startWorkers launches the background jobs; they stop with ctx
func (d *appDependencies) startWorkers(ctx context.Context, log logger.Logger) {
	if d.memoryStore != nil {
		go d.memoryStore.Run(ctx)
	}
	if d.services.Notifications != nil {
		d.services.Notifications.LogTo(ctx, log, notificationCapacity)
	}

	go func() {
		ticker := time.NewTicker(sessionPurgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if err := app.PurgeExpiredSessions(ctx, d.sessionRepo, now, log); err != nil {
					log.Warn("Failed to purge expired sessions: ", err)
				}
			}
		}
	}()
}

func (d *appDependencies) close(log logger.Logger) {
	if d.redisClient == nil {
		return
	}
	if err := d.redisClient.Close(); err != nil {
		log.Warn("Failed to close redis client: ", err)
	}
}

// startServerWithGracefulShutdown configures and starts the HTTP server
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Initialize Gin router
	r := gin.Default()

	// Setup CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services, deps.limiter, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
