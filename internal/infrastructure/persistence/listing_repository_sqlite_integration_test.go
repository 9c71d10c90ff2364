//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/properties"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/security"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
)

func TestPropertySqliteRepository_Search(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	ownerID := uuid.NewString()
	cheap := CreateTestProperty(t, ownerID, properties.OperationRent, "Madrid", 800, 2)
	big := CreateTestProperty(t, ownerID, properties.OperationRent, "Madrid", 1400, 4)
	sale := CreateTestProperty(t, ownerID, properties.OperationSale, "Valencia", 210000, 3)
	for _, p := range []*properties.Property{cheap, big, sale} {
		require.NoError(t, ctx.PropertyRepo.Create(context.Background(), p))
	}

	tests := []struct {
		name  string
		query func(q *properties.PropertyQuery)
		want  []string
	}{
		{"operation", func(q *properties.PropertyQuery) { q.Operation = properties.OperationSale }, []string{sale.ID}},
		{"city is case insensitive", func(q *properties.PropertyQuery) {
			q.City = "madrid"
			q.SortBy, q.SortOrder = "price", "asc"
		}, []string{cheap.ID, big.ID}},
		{"price range", func(q *properties.PropertyQuery) { q.MinPrice, q.MaxPrice = 1000, 5000 }, []string{big.ID}},
		{"minimum rooms", func(q *properties.PropertyQuery) {
			q.MinRooms = 3
			q.SortBy, q.SortOrder = "price", "desc"
		}, []string{sale.ID, big.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := properties.NewPropertyQuery()
			tt.query(query)

			found, err := ctx.PropertyRepo.List(context.Background(), query)
			require.NoError(t, err)

			ids := make([]string, len(found))
			for i, p := range found {
				ids[i] = p.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSecuritySqliteRepository_ReplaceAll(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	first := []*security.SecuritySystem{
		CreateTestSecuritySystem(t, "Vigila", 39.9),
		CreateTestSecuritySystem(t, "Guarda", 24.5),
	}
	require.NoError(t, ctx.SecurityRepo.ReplaceAll(context.Background(), first))

	listed, err := ctx.SecurityRepo.List(context.Background(), security.NewSecuritySystemQuery())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Guarda", listed[0].Provider)
	assert.Equal(t, []string{"CRA 24h", "App móvil"}, listed[0].Features)

	second := []*security.SecuritySystem{CreateTestSecuritySystem(t, "Nueva", 19.9)}
	require.NoError(t, ctx.SecurityRepo.ReplaceAll(context.Background(), second))

	count, err := ctx.SecurityRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = ctx.SecurityRepo.GetByID(context.Background(), first[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSecuritySqliteRepository_ReplaceAll_InvalidKeepsCatalog(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, ctx.SecurityRepo.ReplaceAll(context.Background(), []*security.SecuritySystem{CreateTestSecuritySystem(t, "Vigila", 39.9)}))

	invalid := CreateTestSecuritySystem(t, "Rota", 10)
	invalid.Type = "dron"
	err := ctx.SecurityRepo.ReplaceAll(context.Background(), []*security.SecuritySystem{invalid})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	count, err := ctx.SecurityRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserSqliteRepository(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "Ana@Example.com")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	fetched, err := ctx.UserRepo.GetByEmail(context.Background(), "ana@example.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
	assert.Equal(t, "ana@example.com", fetched.Email)

	duplicate := CreateTestUser(t, "ana@example.com")
	assert.ErrorIs(t, ctx.UserRepo.Create(context.Background(), duplicate), domain.ErrConflict)

	fetched.PostalCode = "28004"
	require.NoError(t, ctx.UserRepo.UpdateByID(context.Background(), fetched))
	updated, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "28004", updated.PostalCode)

	require.NoError(t, ctx.UserRepo.DeleteByID(context.Background(), user.ID))
	_, err = ctx.UserRepo.GetByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionSqliteRepository(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	userID := uuid.NewString()
	live := &accounts.Session{Token: uuid.NewString(), UserID: userID, ExpiresAt: fixedTime.Add(time.Hour), DateTimeCreated: fixedTime}
	stale := &accounts.Session{Token: uuid.NewString(), UserID: userID, ExpiresAt: fixedTime.Add(-time.Hour), DateTimeCreated: fixedTime}
	require.NoError(t, ctx.SessionRepo.Create(context.Background(), live))
	require.NoError(t, ctx.SessionRepo.Create(context.Background(), stale))

	removed, err := ctx.SessionRepo.DeleteExpired(context.Background(), fixedTime)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	fetched, err := ctx.SessionRepo.GetByToken(context.Background(), live.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, fetched.UserID)

	require.NoError(t, ctx.SessionRepo.DeleteByUserID(context.Background(), userID))
	_, err = ctx.SessionRepo.GetByToken(context.Background(), live.Token)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
