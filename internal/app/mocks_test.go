//go:build unit
// +build unit

package app

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/blog"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/forum"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/indicators"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/news"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/properties"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/security"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
)

// MockElectricityTariffRepository is a mock implementation of ElectricityTariffRepository
type MockElectricityTariffRepository struct {
	mock.Mock
}

func (m *MockElectricityTariffRepository) Create(ctx context.Context, tariff *tariffs.ElectricityTariff) error {
	return m.Called(ctx, tariff).Error(0)
}

func (m *MockElectricityTariffRepository) List(ctx context.Context, query *tariffs.ElectricityTariffQuery) ([]*tariffs.ElectricityTariff, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tariffs.ElectricityTariff), args.Error(1)
}

func (m *MockElectricityTariffRepository) GetByID(ctx context.Context, tariffID string) (*tariffs.ElectricityTariff, error) {
	args := m.Called(ctx, tariffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tariffs.ElectricityTariff), args.Error(1)
}

func (m *MockElectricityTariffRepository) DeleteByID(ctx context.Context, tariffID string) error {
	return m.Called(ctx, tariffID).Error(0)
}

func (m *MockElectricityTariffRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockInternetTariffRepository is a mock implementation of InternetTariffRepository
type MockInternetTariffRepository struct {
	mock.Mock
}

func (m *MockInternetTariffRepository) Create(ctx context.Context, tariff *tariffs.InternetTariff) error {
	return m.Called(ctx, tariff).Error(0)
}

func (m *MockInternetTariffRepository) List(ctx context.Context, query *tariffs.InternetTariffQuery) ([]*tariffs.InternetTariff, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tariffs.InternetTariff), args.Error(1)
}

func (m *MockInternetTariffRepository) GetByID(ctx context.Context, tariffID string) (*tariffs.InternetTariff, error) {
	args := m.Called(ctx, tariffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tariffs.InternetTariff), args.Error(1)
}

func (m *MockInternetTariffRepository) DeleteByID(ctx context.Context, tariffID string) error {
	return m.Called(ctx, tariffID).Error(0)
}

func (m *MockInternetTariffRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockNewsRepository is a mock implementation of NewsRepository
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) Create(ctx context.Context, item *news.NewsItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockNewsRepository) List(ctx context.Context, query *news.NewsQuery) ([]*news.NewsItem, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*news.NewsItem), args.Error(1)
}

func (m *MockNewsRepository) GetByID(ctx context.Context, itemID string) (*news.NewsItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*news.NewsItem), args.Error(1)
}

func (m *MockNewsRepository) DeleteByID(ctx context.Context, itemID string) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *MockNewsRepository) ExistingURLs(ctx context.Context, urls []string) (map[string]bool, error) {
	args := m.Called(ctx, urls)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

// MockNewsFetcher is a mock implementation of NewsFetcher
type MockNewsFetcher struct {
	mock.Mock
}

func (m *MockNewsFetcher) Fetch(ctx context.Context, query string) ([]news.Article, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]news.Article), args.Error(1)
}

// MockBlogRepository is a mock implementation of BlogRepository
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, post *blog.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockBlogRepository) List(ctx context.Context, query *blog.BlogQuery) ([]*blog.BlogPost, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*blog.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetByID(ctx context.Context, postID string) (*blog.BlogPost, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetBySlug(ctx context.Context, slug string) (*blog.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) DeleteByID(ctx context.Context, postID string) error {
	return m.Called(ctx, postID).Error(0)
}

// MockForumRepository is a mock implementation of ForumRepository
type MockForumRepository struct {
	mock.Mock
}

func (m *MockForumRepository) CreatePost(ctx context.Context, post *forum.ForumPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockForumRepository) ListPosts(ctx context.Context, query *forum.ForumQuery) ([]*forum.ForumPost, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*forum.ForumPost), args.Error(1)
}

func (m *MockForumRepository) GetPostByID(ctx context.Context, postID string) (*forum.ForumPost, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forum.ForumPost), args.Error(1)
}

func (m *MockForumRepository) DeletePostByID(ctx context.Context, postID string) error {
	return m.Called(ctx, postID).Error(0)
}

func (m *MockForumRepository) CreateReply(ctx context.Context, reply *forum.ForumReply) error {
	return m.Called(ctx, reply).Error(0)
}

func (m *MockForumRepository) ListReplies(ctx context.Context, postID string) ([]*forum.ForumReply, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*forum.ForumReply), args.Error(1)
}

// MockPropertyRepository is a mock implementation of PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *properties.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *MockPropertyRepository) List(ctx context.Context, query *properties.PropertyQuery) ([]*properties.Property, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*properties.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, propertyID string) (*properties.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*properties.Property), args.Error(1)
}

func (m *MockPropertyRepository) DeleteByID(ctx context.Context, propertyID string) error {
	return m.Called(ctx, propertyID).Error(0)
}

// MockSecuritySystemRepository is a mock implementation of SecuritySystemRepository
type MockSecuritySystemRepository struct {
	mock.Mock
}

func (m *MockSecuritySystemRepository) List(ctx context.Context, query *security.SecuritySystemQuery) ([]*security.SecuritySystem, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*security.SecuritySystem), args.Error(1)
}

func (m *MockSecuritySystemRepository) GetByID(ctx context.Context, systemID string) (*security.SecuritySystem, error) {
	args := m.Called(ctx, systemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.SecuritySystem), args.Error(1)
}

func (m *MockSecuritySystemRepository) ReplaceAll(ctx context.Context, systems []*security.SecuritySystem) error {
	return m.Called(ctx, systems).Error(0)
}

func (m *MockSecuritySystemRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSecurityCatalogClient is a mock implementation of SecurityCatalogClient
type MockSecurityCatalogClient struct {
	mock.Mock
}

func (m *MockSecurityCatalogClient) FetchSystems(ctx context.Context) ([]*security.SecuritySystem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*security.SecuritySystem), args.Error(1)
}

func (m *MockSecurityCatalogClient) FetchCoverage(ctx context.Context, postalCode string) (*security.Coverage, error) {
	args := m.Called(ctx, postalCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.Coverage), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *accounts.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*accounts.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockUserRepository) UpdateByID(ctx context.Context, user *accounts.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *accounts.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) GetByToken(ctx context.Context, token string) (*accounts.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockSessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockAvatarConnector is a mock implementation of AvatarConnector
type MockAvatarConnector struct {
	mock.Mock
}

func (m *MockAvatarConnector) Upload(ctx context.Context, blobName string, content []byte, contentType string) error {
	return m.Called(ctx, blobName, content, contentType).Error(0)
}

func (m *MockAvatarConnector) Download(ctx context.Context, blobName string) ([]byte, error) {
	args := m.Called(ctx, blobName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAvatarConnector) Delete(ctx context.Context, blobName string) error {
	return m.Called(ctx, blobName).Error(0)
}

// MockPriceClient is a mock implementation of PriceClient
type MockPriceClient struct {
	mock.Mock
}

func (m *MockPriceClient) FetchDay(ctx context.Context, day time.Time) ([]indicators.HourlyPrice, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]indicators.HourlyPrice), args.Error(1)
}

// MockSpeedClient is a mock implementation of SpeedClient
type MockSpeedClient struct {
	mock.Mock
}

func (m *MockSpeedClient) FetchSpeeds(ctx context.Context, postalCode string) ([]indicators.ProviderSpeed, error) {
	args := m.Called(ctx, postalCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]indicators.ProviderSpeed), args.Error(1)
}
