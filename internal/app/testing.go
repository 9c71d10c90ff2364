//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/blog"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/forum"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/properties"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/connector"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/persistence"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/testutil"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	// Catalog services
	ElectricityCatalog tariffs.ElectricityCatalogService
	InternetCatalog    tariffs.InternetCatalogService

	// Account services
	Auth    accounts.AuthService
	Profile accounts.ProfileService

	// Community services
	Blog       blog.BlogService
	Forum      forum.ForumService
	Properties properties.PropertyService

	// Infrastructure
	DBContext *persistence.TestContext
	Avatars   accounts.AvatarConnector
}

// SetupTestServices initializes the database backed services for
// integration tests. Avatars are stored under a temporary directory.
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	ctx := context.Background()
	logger := testutil.SetupTestLogger(t)

	dbContext := persistence.SetupTestDB(t, dbType)

	avatars, err := connector.NewAvatarConnector(ctx, &config.BlobConnectorSettings{
		CloudProvider: config.LocalStorageProvider,
		ContainerName: "avatars",
		LocalPath:     t.TempDir(),
	}, logger)
	require.NoError(t, err, "Failed to create avatar connector")

	services := &TestServices{DBContext: dbContext, Avatars: avatars}

	services.ElectricityCatalog, err = NewElectricityCatalogService(dbContext.ElectricityTariffRepo, logger)
	require.NoError(t, err, "Failed to create electricity catalog service")

	services.InternetCatalog, err = NewInternetCatalogService(dbContext.InternetTariffRepo, logger)
	require.NoError(t, err, "Failed to create internet catalog service")

	// minimum bcrypt cost keeps the tests fast
	services.Auth, err = NewAuthService(dbContext.UserRepo, dbContext.SessionRepo, &config.AuthSettings{
		SessionTTL: time.Hour,
		BcryptCost: 4,
	}, logger)
	require.NoError(t, err, "Failed to create auth service")

	services.Profile, err = NewProfileService(dbContext.UserRepo, dbContext.SessionRepo, avatars, logger)
	require.NoError(t, err, "Failed to create profile service")

	services.Blog, err = NewBlogService(dbContext.BlogRepo, logger)
	require.NoError(t, err, "Failed to create blog service")

	services.Forum, err = NewForumService(dbContext.ForumRepo, logger)
	require.NoError(t, err, "Failed to create forum service")

	services.Properties, err = NewPropertyService(dbContext.PropertyRepo, logger)
	require.NoError(t, err, "Failed to create property service")

	return services
}

// RegisterTestUser registers an account and returns it with a fresh session
func RegisterTestUser(t *testing.T, services *TestServices, email string) (*accounts.User, *accounts.Session) {
	t.Helper()

	ctx := context.Background()
	user, err := services.Auth.Register(ctx, &accounts.Registration{
		Email:       email,
		Password:    "contraseña-segura",
		DisplayName: "Ana",
		PostalCode:  "28004",
	})
	require.NoError(t, err, "Failed to register user")

	session, err := services.Auth.Login(ctx, email, "contraseña-segura")
	require.NoError(t, err, "Failed to log in")

	return user, session
}
