//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/blog"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/forum"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/news"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/properties"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/security"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/testutil"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB                    *gorm.DB
	ElectricityTariffRepo tariffs.ElectricityTariffRepository
	InternetTariffRepo    tariffs.InternetTariffRepository
	NewsRepo              news.NewsRepository
	BlogRepo              blog.BlogRepository
	ForumRepo             forum.ForumRepository
	PropertyRepo          properties.PropertyRepository
	SecurityRepo          security.SecuritySystemRepository
	UserRepo              accounts.UserRepository
	SessionRepo           accounts.SessionRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.ElectricityTariffRepo, err = NewGormElectricityTariffRepository(db, log)
	require.NoError(t, err)
	tc.InternetTariffRepo, err = NewGormInternetTariffRepository(db, log)
	require.NoError(t, err)
	tc.NewsRepo, err = NewGormNewsRepository(db, log)
	require.NoError(t, err)
	tc.BlogRepo, err = NewGormBlogRepository(db, log)
	require.NoError(t, err)
	tc.ForumRepo, err = NewGormForumRepository(db, log)
	require.NoError(t, err)
	tc.PropertyRepo, err = NewGormPropertyRepository(db, log)
	require.NoError(t, err)
	tc.SecurityRepo, err = NewGormSecuritySystemRepository(db, log)
	require.NoError(t, err)
	tc.UserRepo, err = NewGormUserRepository(db, log)
	require.NoError(t, err)
	tc.SessionRepo, err = NewGormSessionRepository(db, log)
	require.NoError(t, err)

	return tc
}

// fixedTime keeps timestamps deterministic across fixtures
var fixedTime = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func floatPtr(v float64) *float64 { return &v }

// CreateTestElectricityTariff creates a flat-rate tariff with default values
func CreateTestElectricityTariff(t *testing.T, provider string, flatRate float64) *tariffs.ElectricityTariff {
	t.Helper()

	return &tariffs.ElectricityTariff{
		ID:              uuid.NewString(),
		Provider:        provider,
		Name:            "Tarifa " + provider,
		FixedRate:       0.1,
		FlatRate:        floatPtr(flatRate),
		DateTimeCreated: time.Now(),
	}
}

// CreateTestNewsItem creates a news item published at publishedAt
func CreateTestNewsItem(t *testing.T, url, category string, publishedAt time.Time) *news.NewsItem {
	t.Helper()

	return &news.NewsItem{
		ID:              uuid.NewString(),
		Title:           "Noticia " + url,
		URL:             url,
		Source:          "Agencia",
		Category:        category,
		PublishedAt:     publishedAt,
		DateTimeCreated: time.Now(),
	}
}

// CreateTestForumPost creates a forum post by authorID
func CreateTestForumPost(t *testing.T, authorID string) *forum.ForumPost {
	t.Helper()

	return &forum.ForumPost{
		ID:              uuid.NewString(),
		AuthorID:        authorID,
		AuthorName:      "Ana",
		Category:        forum.CategoryElectricity,
		Title:           "¿Merece la pena la discriminación horaria?",
		Content:         "Trabajo desde casa por las mañanas.",
		DateTimeCreated: time.Now(),
	}
}

// CreateTestBlogPost creates a published post with the given slug and tags
func CreateTestBlogPost(t *testing.T, authorID, slug string, publishedAt time.Time, tags ...string) *blog.BlogPost {
	t.Helper()

	return &blog.BlogPost{
		ID:          uuid.NewString(),
		Slug:        slug,
		Title:       "Entrada " + slug,
		Content:     "Cómo leer la factura de la luz.",
		AuthorID:    authorID,
		Tags:        tags,
		PublishedAt: publishedAt,
	}
}

// CreateTestProperty creates a listing with custom options
func CreateTestProperty(t *testing.T, ownerID, operation, city string, price float64, rooms int) *properties.Property {
	t.Helper()

	return &properties.Property{
		ID:              uuid.NewString(),
		OwnerID:         ownerID,
		Title:           "Piso en " + city,
		Operation:       operation,
		PropertyType:    "piso",
		Price:           price,
		AreaM2:          80,
		Rooms:           rooms,
		Bathrooms:       1,
		PostalCode:      "28004",
		City:            city,
		DateTimeCreated: time.Now(),
	}
}

// CreateTestSecuritySystem creates a catalog entry
func CreateTestSecuritySystem(t *testing.T, provider string, monthlyFee float64) *security.SecuritySystem {
	t.Helper()

	return &security.SecuritySystem{
		ID:                uuid.NewString(),
		Provider:          provider,
		Name:              "Kit " + provider,
		Type:              "kit",
		InstallationPrice: 99,
		MonthlyFee:        monthlyFee,
		Features:          []string{"CRA 24h", "App móvil"},
		Rating:            4.2,
		DateTimeCreated:   time.Now(),
	}
}

// CreateTestUser creates an account with a placeholder password hash
func CreateTestUser(t *testing.T, email string) *accounts.User {
	t.Helper()

	return &accounts.User{
		ID:              uuid.NewString(),
		Email:           email,
		DisplayName:     "Ana",
		PasswordHash:    "$2a$10$placeholder",
		DateTimeCreated: time.Now(),
	}
}
