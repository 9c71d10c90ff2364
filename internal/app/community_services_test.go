//go:build unit
// +build unit

package app

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/blog"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/forum"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/properties"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/testutil"
)

func TestBlogService_Publish(t *testing.T) {
	authorID := uuid.NewString()

	t.Run("Derives slug from title", func(t *testing.T) {
		repo := new(MockBlogRepository)
		service, err := NewBlogService(repo, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		repo.On("GetBySlug", mock.Anything, "como-ahorrar-en-la-factura").Return(nil, domain.ErrNotFound)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*blog.BlogPost")).Return(nil)

		post, err := service.Publish(context.Background(), authorID, &blog.BlogPost{Title: "Cómo ahorrar en la factura", Content: "..."})
		require.NoError(t, err)
		assert.Equal(t, "como-ahorrar-en-la-factura", post.Slug)
		assert.Equal(t, authorID, post.AuthorID)
		assert.NotEmpty(t, post.ID)
	})

	t.Run("Taken slug gets a suffix", func(t *testing.T) {
		repo := new(MockBlogRepository)
		service, err := NewBlogService(repo, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		repo.On("GetBySlug", mock.Anything, "fibra").Return(&blog.BlogPost{Slug: "fibra"}, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		post, err := service.Publish(context.Background(), authorID, &blog.BlogPost{Title: "Fibra", Content: "..."})
		require.NoError(t, err)
		assert.Equal(t, "fibra-"+post.ID[:8], post.Slug)
	})
}

func TestBlogService_DeleteByID_OnlyAuthor(t *testing.T) {
	repo := new(MockBlogRepository)
	service, err := NewBlogService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	authorID := uuid.NewString()
	postID := uuid.NewString()
	repo.On("GetByID", mock.Anything, postID).Return(&blog.BlogPost{ID: postID, AuthorID: authorID}, nil)
	repo.On("DeleteByID", mock.Anything, postID).Return(nil)

	err = service.DeleteByID(context.Background(), postID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)

	require.NoError(t, service.DeleteByID(context.Background(), postID, authorID))
}

func TestForumService_Thread(t *testing.T) {
	repo := new(MockForumRepository)
	service, err := NewForumService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	repo.On("CreatePost", mock.Anything, mock.AnythingOfType("*forum.ForumPost")).Return(nil)
	post, err := service.CreatePost(context.Background(), &forum.ForumPost{
		AuthorID: uuid.NewString(), AuthorName: "Ana", Title: "¿Qué tarifa?", Content: "Dudas", ReplyCount: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, forum.CategoryGeneral, post.Category)
	assert.Zero(t, post.ReplyCount)

	reply := &forum.ForumReply{ID: uuid.NewString(), PostID: post.ID, Content: "La PVPC", DateTimeCreated: time.Now()}
	repo.On("GetPostByID", mock.Anything, post.ID).Return(post, nil)
	repo.On("ListReplies", mock.Anything, post.ID).Return([]*forum.ForumReply{reply}, nil)

	thread, err := service.GetThread(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Same(t, post, thread.Post)
	assert.Len(t, thread.Replies, 1)
}

func TestForumService_Reply_MissingPost(t *testing.T) {
	repo := new(MockForumRepository)
	service, err := NewForumService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	repo.On("CreateReply", mock.Anything, mock.Anything).Return(domain.ErrNotFound)
	_, err = service.Reply(context.Background(), &forum.ForumReply{PostID: uuid.NewString()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestForumService_DeletePost_OnlyAuthor(t *testing.T) {
	repo := new(MockForumRepository)
	service, err := NewForumService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	postID := uuid.NewString()
	repo.On("GetPostByID", mock.Anything, postID).Return(&forum.ForumPost{ID: postID, AuthorID: uuid.NewString()}, nil)

	err = service.DeletePost(context.Background(), postID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPropertyService(t *testing.T) {
	repo := new(MockPropertyRepository)
	service, err := NewPropertyService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	ownerID := uuid.NewString()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*properties.Property")).Return(nil)

	property, err := service.Create(context.Background(), ownerID, &properties.Property{
		Title: "Piso en Chamberí", Operation: properties.OperationRent, PropertyType: "piso",
		Price: 1200, AreaM2: 70, Rooms: 2, PostalCode: "28010", City: "Madrid",
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, property.OwnerID)

	repo.On("GetByID", mock.Anything, property.ID).Return(property, nil)
	repo.On("DeleteByID", mock.Anything, property.ID).Return(nil)

	assert.ErrorIs(t, service.DeleteByID(context.Background(), property.ID, uuid.NewString()), domain.ErrForbidden)
	require.NoError(t, service.DeleteByID(context.Background(), property.ID, ownerID))
	repo.AssertNumberOfCalls(t, "DeleteByID", 1)
}
