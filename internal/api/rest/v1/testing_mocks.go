//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/blog"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/forum"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/indicators"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/news"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/properties"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/security"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/ratelimit"

	"github.com/stretchr/testify/mock"
)

// MockElectricityCatalogService is a mock implementation of ElectricityCatalogService
type MockElectricityCatalogService struct {
	mock.Mock
}

func (m *MockElectricityCatalogService) Create(ctx context.Context, tariff *tariffs.ElectricityTariff) (*tariffs.ElectricityTariff, error) {
	args := m.Called(ctx, tariff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tariffs.ElectricityTariff), args.Error(1)
}

func (m *MockElectricityCatalogService) List(ctx context.Context, query *tariffs.ElectricityTariffQuery) ([]*tariffs.ElectricityTariff, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tariffs.ElectricityTariff), args.Error(1)
}

func (m *MockElectricityCatalogService) GetByID(ctx context.Context, tariffID string) (*tariffs.ElectricityTariff, error) {
	args := m.Called(ctx, tariffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tariffs.ElectricityTariff), args.Error(1)
}

func (m *MockElectricityCatalogService) DeleteByID(ctx context.Context, tariffID string) error {
	args := m.Called(ctx, tariffID)
	return args.Error(0)
}

func (m *MockElectricityCatalogService) Compare(ctx context.Context, req tariffs.ElectricityComparisonRequest) ([]tariffs.ElectricityQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tariffs.ElectricityQuote), args.Error(1)
}

// MockInternetCatalogService is a mock implementation of InternetCatalogService
type MockInternetCatalogService struct {
	mock.Mock
}

func (m *MockInternetCatalogService) Create(ctx context.Context, tariff *tariffs.InternetTariff) (*tariffs.InternetTariff, error) {
	args := m.Called(ctx, tariff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tariffs.InternetTariff), args.Error(1)
}

func (m *MockInternetCatalogService) List(ctx context.Context, query *tariffs.InternetTariffQuery) ([]*tariffs.InternetTariff, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tariffs.InternetTariff), args.Error(1)
}

func (m *MockInternetCatalogService) GetByID(ctx context.Context, tariffID string) (*tariffs.InternetTariff, error) {
	args := m.Called(ctx, tariffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tariffs.InternetTariff), args.Error(1)
}

func (m *MockInternetCatalogService) DeleteByID(ctx context.Context, tariffID string) error {
	args := m.Called(ctx, tariffID)
	return args.Error(0)
}

func (m *MockInternetCatalogService) Compare(ctx context.Context, req tariffs.InternetComparisonRequest) ([]tariffs.InternetQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tariffs.InternetQuote), args.Error(1)
}

// MockQuoteExporter is a mock implementation of QuoteExporter
type MockQuoteExporter struct {
	mock.Mock
}

func (m *MockQuoteExporter) ExportElectricity(quotes []tariffs.ElectricityQuote) ([]byte, error) {
	args := m.Called(quotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockQuoteExporter) ExportInternet(quotes []tariffs.InternetQuote) ([]byte, error) {
	args := m.Called(quotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockQuoteExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (m *MockQuoteExporter) FileExtension() string {
	return ".xlsx"
}

// MockPriceService is a mock implementation of PriceService
type MockPriceService struct {
	mock.Mock
}

func (m *MockPriceService) DailyPrices(ctx context.Context, day time.Time) (*indicators.DailyPrices, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*indicators.DailyPrices), args.Error(1)
}

// MockSpeedService is a mock implementation of SpeedService
type MockSpeedService struct {
	mock.Mock
}

func (m *MockSpeedService) Report(ctx context.Context, postalCode string) (*indicators.SpeedReport, error) {
	args := m.Called(ctx, postalCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*indicators.SpeedReport), args.Error(1)
}

// MockNewsService is a mock implementation of NewsService
type MockNewsService struct {
	mock.Mock
}

func (m *MockNewsService) Aggregate(ctx context.Context) (*news.AggregationResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*news.AggregationResult), args.Error(1)
}

func (m *MockNewsService) List(ctx context.Context, query *news.NewsQuery) ([]*news.NewsItem, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*news.NewsItem), args.Error(1)
}

func (m *MockNewsService) GetByID(ctx context.Context, itemID string) (*news.NewsItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*news.NewsItem), args.Error(1)
}

func (m *MockNewsService) DeleteByID(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// MockBlogService is a mock implementation of BlogService
type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) Publish(ctx context.Context, authorID string, post *blog.BlogPost) (*blog.BlogPost, error) {
	args := m.Called(ctx, authorID, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.BlogPost), args.Error(1)
}

func (m *MockBlogService) List(ctx context.Context, query *blog.BlogQuery) ([]*blog.BlogPost, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*blog.BlogPost), args.Error(1)
}

func (m *MockBlogService) GetBySlug(ctx context.Context, slug string) (*blog.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.BlogPost), args.Error(1)
}

func (m *MockBlogService) DeleteByID(ctx context.Context, postID, userID string) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

// MockForumService is a mock implementation of ForumService
type MockForumService struct {
	mock.Mock
}

func (m *MockForumService) CreatePost(ctx context.Context, post *forum.ForumPost) (*forum.ForumPost, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forum.ForumPost), args.Error(1)
}

func (m *MockForumService) ListPosts(ctx context.Context, query *forum.ForumQuery) ([]*forum.ForumPost, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*forum.ForumPost), args.Error(1)
}

func (m *MockForumService) GetThread(ctx context.Context, postID string) (*forum.Thread, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forum.Thread), args.Error(1)
}

func (m *MockForumService) Reply(ctx context.Context, reply *forum.ForumReply) (*forum.ForumReply, error) {
	args := m.Called(ctx, reply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forum.ForumReply), args.Error(1)
}

func (m *MockForumService) DeletePost(ctx context.Context, postID, userID string) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

// MockPropertyService is a mock implementation of PropertyService
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Create(ctx context.Context, ownerID string, property *properties.Property) (*properties.Property, error) {
	args := m.Called(ctx, ownerID, property)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*properties.Property), args.Error(1)
}

func (m *MockPropertyService) Search(ctx context.Context, query *properties.PropertyQuery) ([]*properties.Property, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*properties.Property), args.Error(1)
}

func (m *MockPropertyService) GetByID(ctx context.Context, propertyID string) (*properties.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*properties.Property), args.Error(1)
}

func (m *MockPropertyService) DeleteByID(ctx context.Context, propertyID, userID string) error {
	args := m.Called(ctx, propertyID, userID)
	return args.Error(0)
}

// MockSecurityService is a mock implementation of SecurityService
type MockSecurityService struct {
	mock.Mock
}

func (m *MockSecurityService) List(ctx context.Context, query *security.SecuritySystemQuery) ([]*security.SecuritySystem, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*security.SecuritySystem), args.Error(1)
}

func (m *MockSecurityService) Sync(ctx context.Context) (*security.SyncResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.SyncResult), args.Error(1)
}

func (m *MockSecurityService) Coverage(ctx context.Context, postalCode string) (*security.Coverage, error) {
	args := m.Called(ctx, postalCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.Coverage), args.Error(1)
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, reg *accounts.Registration) (*accounts.User, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*accounts.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*accounts.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, userID string) (*accounts.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, userID string, update *accounts.ProfileUpdate) (*accounts.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockProfileService) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockProfileService) UploadAvatar(ctx context.Context, userID string, form *multipart.Form) (*accounts.User, error) {
	args := m.Called(ctx, userID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockProfileService) DownloadAvatar(ctx context.Context, userID string) (*accounts.Avatar, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Avatar), args.Error(1)
}

// MockRateLimitStore is a mock implementation of ratelimit.Store
type MockRateLimitStore struct {
	mock.Mock
}

func (m *MockRateLimitStore) Take(ctx context.Context, key string) (ratelimit.Decision, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(ratelimit.Decision), args.Error(1)
}
