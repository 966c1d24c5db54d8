package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "animehub/internal/errors"
	"animehub/internal/model"
)

// MockNewsRepository is a mock implementation of NewsRepository.
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) Create(ctx context.Context, news *model.News) error {
	args := m.Called(ctx, news)
	return args.Error(0)
}

func (m *MockNewsRepository) FindByID(ctx context.Context, id uint) (*model.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsRepository) List(ctx context.Context, limit, offset int) ([]model.News, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.News), args.Error(1)
}

func (m *MockNewsRepository) Update(ctx context.Context, id uint, title, content string, imageURL *string) (int64, error) {
	args := m.Called(ctx, id, title, content, imageURL)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNewsRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockCommentRepository is a mock implementation of CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByAnime(ctx context.Context, animeID, limit, offset int) ([]model.Comment, error) {
	args := m.Called(ctx, animeID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Verify(ctx context.Context, username, password string) (*model.Admin, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAuthService) HashPassword(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Resolve(ctx context.Context, token string) (uint, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockAuthService) GetByID(ctx context.Context, id uint) (*model.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAuthService) CreateAdmin(ctx context.Context, username, password string) (*model.Admin, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

type contentFixture struct {
	newsRepo    *MockNewsRepository
	commentRepo *MockCommentRepository
	auth        *MockAuthService
	svc         ContentService
}

func newContentFixture() *contentFixture {
	f := &contentFixture{
		newsRepo:    new(MockNewsRepository),
		commentRepo: new(MockCommentRepository),
		auth:        new(MockAuthService),
	}
	f.svc = NewContentService(f.newsRepo, f.commentRepo, f.auth)
	return f
}

func TestContentService_CreateComment_Boundaries(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		username  string
		comment   string
		wantField string
	}{
		{"username too short", "a", "valid comment", "username"},
		{"username at lower bound", "ab", "valid comment", ""},
		{"username at upper bound", strings.Repeat("u", 50), "valid comment", ""},
		{"username too long", strings.Repeat("u", 51), "valid comment", "username"},
		{"comment too short", "user", "four", "comment"},
		{"comment at lower bound", "user", "12345", ""},
		{"comment at upper bound", "user", strings.Repeat("c", 1000), ""},
		{"comment too long", "user", strings.Repeat("c", 1001), "comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newContentFixture()
			if tt.wantField == "" {
				f.commentRepo.On("Create", ctx, mock.AnythingOfType("*model.Comment")).Return(nil)
			}

			got, err := f.svc.CreateComment(ctx, 5, tt.username, tt.comment)

			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.username, got.Username)
				return
			}

			var ve *apperrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			f.commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestContentService_CreateComment_RequiresAnimeID(t *testing.T) {
	f := newContentFixture()

	_, err := f.svc.CreateComment(context.Background(), 0, "user", "valid comment")

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "anime_id", ve.Field)
}

func TestContentService_UpdateNews_Unauthorized(t *testing.T) {
	ctx := context.Background()
	f := newContentFixture()
	f.auth.On("Resolve", ctx, "bad-token").Return(uint(0), apperrors.ErrUnauthorized)

	_, err := f.svc.UpdateNews(ctx, "bad-token", 1, NewsInput{Title: "T", Content: "C"})

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	// Rejected before any store mutation.
	f.newsRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestContentService_DeleteNews_Unauthorized(t *testing.T) {
	ctx := context.Background()
	f := newContentFixture()
	f.auth.On("Resolve", ctx, "bad-token").Return(uint(0), apperrors.ErrUnauthorized)

	err := f.svc.DeleteNews(ctx, "bad-token", 1)

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	f.newsRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestContentService_UpdateNews_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newContentFixture()
	f.auth.On("Resolve", ctx, "token").Return(uint(1), nil)
	f.newsRepo.On("Update", ctx, uint(99), "T", "C", (*string)(nil)).Return(int64(0), nil)

	_, err := f.svc.UpdateNews(ctx, "token", 99, NewsInput{Title: "T", Content: "C"})

	assert.ErrorIs(t, err, apperrors.ErrNewsNotFound)
	f.newsRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestContentService_UpdateNews_Success(t *testing.T) {
	ctx := context.Background()
	f := newContentFixture()
	updated := &model.News{ID: 4, Title: "New", Content: "Body"}
	f.auth.On("Resolve", ctx, "token").Return(uint(1), nil)
	f.newsRepo.On("Update", ctx, uint(4), "New", "Body", (*string)(nil)).Return(int64(1), nil)
	f.newsRepo.On("FindByID", ctx, uint(4)).Return(updated, nil)

	got, err := f.svc.UpdateNews(ctx, "token", 4, NewsInput{Title: "New", Content: "Body"})

	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestContentService_CreateNews(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newContentFixture()
		f.auth.On("Resolve", ctx, "token").Return(uint(1), nil)
		f.newsRepo.On("Create", ctx, mock.AnythingOfType("*model.News")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*model.News).ID = 11
			}).
			Return(nil)

		got, err := f.svc.CreateNews(ctx, "token", NewsInput{Title: "T", Content: "C"})

		require.NoError(t, err)
		assert.Equal(t, uint(11), got.ID)
		assert.Equal(t, "T", got.Title)
		assert.Equal(t, "C", got.Content)
	})

	t.Run("missing title", func(t *testing.T) {
		f := newContentFixture()
		f.auth.On("Resolve", ctx, "token").Return(uint(1), nil)

		_, err := f.svc.CreateNews(ctx, "token", NewsInput{Content: "C"})

		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "title", ve.Field)
		f.newsRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unauthorized", func(t *testing.T) {
		f := newContentFixture()
		f.auth.On("Resolve", ctx, "").Return(uint(0), apperrors.ErrUnauthorized)

		_, err := f.svc.CreateNews(ctx, "", NewsInput{Title: "T", Content: "C"})

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestContentService_DeleteNews_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newContentFixture()
	f.auth.On("Resolve", ctx, "token").Return(uint(1), nil)
	f.newsRepo.On("Delete", ctx, uint(99)).Return(int64(0), nil)

	err := f.svc.DeleteNews(ctx, "token", 99)

	assert.ErrorIs(t, err, apperrors.ErrNewsNotFound)
}

func TestContentService_ListNews_ClampsPagination(t *testing.T) {
	ctx := context.Background()

	t.Run("oversized limit capped", func(t *testing.T) {
		f := newContentFixture()
		f.newsRepo.On("List", ctx, 100, 0).Return([]model.News{}, nil)

		_, err := f.svc.ListNews(ctx, 5000, -3)

		require.NoError(t, err)
		f.newsRepo.AssertExpectations(t)
	})

	t.Run("zero limit falls back to default", func(t *testing.T) {
		f := newContentFixture()
		f.newsRepo.On("List", ctx, 10, 0).Return([]model.News{}, nil)

		_, err := f.svc.ListNews(ctx, 0, 0)

		require.NoError(t, err)
		f.newsRepo.AssertExpectations(t)
	})
}

func TestContentService_ListComments_FiltersByAnime(t *testing.T) {
	ctx := context.Background()
	f := newContentFixture()
	want := []model.Comment{{ID: 2, AnimeID: 5}, {ID: 1, AnimeID: 5}}
	f.commentRepo.On("ListByAnime", ctx, 5, 20, 0).Return(want, nil)

	got, err := f.svc.ListComments(ctx, 5, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestContentService_GetNews_StoreFailure(t *testing.T) {
	ctx := context.Background()
	f := newContentFixture()
	f.newsRepo.On("FindByID", ctx, uint(1)).Return(nil, errors.New("connection refused"))

	_, err := f.svc.GetNews(ctx, 1)

	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNewsNotFound)
}
