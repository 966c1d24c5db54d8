package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "animehub/internal/errors"
	"animehub/internal/model"
	"animehub/internal/repository"
)

const (
	defaultNewsLimit    = 10
	defaultCommentLimit = 20
	// maxPageSize caps caller-supplied limits.
	maxPageSize = 100

	minUsernameLen = 2
	maxUsernameLen = 50
	minCommentLen  = 5
	maxCommentLen  = 1000
)

// NewsInput carries the mutable fields of a news article.
type NewsInput struct {
	Title    string
	Content  string
	ImageURL *string
}

// ContentService enforces validation and authorization policy around news
// and comments. Mutating news operations resolve the session token before
// touching the store; comment creation is public.
type ContentService interface {
	ListNews(ctx context.Context, limit, offset int) ([]model.News, error)
	GetNews(ctx context.Context, id uint) (*model.News, error)
	CreateNews(ctx context.Context, token string, in NewsInput) (*model.News, error)
	UpdateNews(ctx context.Context, token string, id uint, in NewsInput) (*model.News, error)
	DeleteNews(ctx context.Context, token string, id uint) error
	ListComments(ctx context.Context, animeID, limit, offset int) ([]model.Comment, error)
	CreateComment(ctx context.Context, animeID int, username, comment string) (*model.Comment, error)
}

type contentService struct {
	newsRepo    repository.NewsRepository
	commentRepo repository.CommentRepository
	auth        AuthService
}

// NewContentService creates a new content service.
func NewContentService(newsRepo repository.NewsRepository, commentRepo repository.CommentRepository, auth AuthService) ContentService {
	return &contentService{
		newsRepo:    newsRepo,
		commentRepo: commentRepo,
		auth:        auth,
	}
}

// ListNews returns articles newest-created-first.
func (s *contentService) ListNews(ctx context.Context, limit, offset int) ([]model.News, error) {
	limit, offset = clampPage(limit, offset, defaultNewsLimit)
	news, err := s.newsRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return news, nil
}

// GetNews returns a single article.
func (s *contentService) GetNews(ctx context.Context, id uint) (*model.News, error) {
	news, err := s.newsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("find news: %w", err)
	}
	return news, nil
}

// CreateNews creates an article for an authenticated caller.
func (s *contentService) CreateNews(ctx context.Context, token string, in NewsInput) (*model.News, error) {
	if _, err := s.auth.Resolve(ctx, token); err != nil {
		return nil, err
	}
	if err := validateNewsInput(in); err != nil {
		return nil, err
	}

	news := &model.News{
		Title:    in.Title,
		Content:  in.Content,
		ImageURL: in.ImageURL,
	}
	if err := s.newsRepo.Create(ctx, news); err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	return news, nil
}

// UpdateNews rewrites an article. Zero rows affected means the target does
// not exist, distinct from a store failure.
func (s *contentService) UpdateNews(ctx context.Context, token string, id uint, in NewsInput) (*model.News, error) {
	if _, err := s.auth.Resolve(ctx, token); err != nil {
		return nil, err
	}
	if err := validateNewsInput(in); err != nil {
		return nil, err
	}

	rows, err := s.newsRepo.Update(ctx, id, in.Title, in.Content, in.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.ErrNewsNotFound
	}

	news, err := s.newsRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload news: %w", err)
	}
	return news, nil
}

// DeleteNews removes an article for an authenticated caller.
func (s *contentService) DeleteNews(ctx context.Context, token string, id uint) error {
	if _, err := s.auth.Resolve(ctx, token); err != nil {
		return err
	}

	rows, err := s.newsRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNewsNotFound
	}
	return nil
}

// ListComments returns comments for one anime, newest-created-first.
func (s *contentService) ListComments(ctx context.Context, animeID, limit, offset int) ([]model.Comment, error) {
	limit, offset = clampPage(limit, offset, defaultCommentLimit)
	comments, err := s.commentRepo.ListByAnime(ctx, animeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// CreateComment validates and persists a public comment. The anime ID is
// not checked against the upstream service.
func (s *contentService) CreateComment(ctx context.Context, animeID int, username, comment string) (*model.Comment, error) {
	if animeID <= 0 {
		return nil, apperrors.NewValidationError("anime_id", "Anime ID is required")
	}
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return nil, apperrors.NewValidationError("username", "Username must be between 2 and 50 characters")
	}
	if len(comment) < minCommentLen || len(comment) > maxCommentLen {
		return nil, apperrors.NewValidationError("comment", "Comment must be between 5 and 1000 characters")
	}

	c := &model.Comment{
		AnimeID:  animeID,
		Username: username,
		Comment:  comment,
	}
	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

func validateNewsInput(in NewsInput) error {
	if in.Title == "" {
		return apperrors.NewValidationError("title", "Title and content are required")
	}
	if in.Content == "" {
		return apperrors.NewValidationError("content", "Title and content are required")
	}
	return nil
}

func clampPage(limit, offset, def int) (int, int) {
	if limit <= 0 {
		limit = def
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
