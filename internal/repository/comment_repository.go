package repository

import (
	"context"

	"gorm.io/gorm"

	"animehub/internal/model"
)

// CommentRepository defines comment persistence operations. Comments are
// create-only.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByAnime(ctx context.Context, animeID, limit, offset int) ([]model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a new comment.
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByAnime returns comments for one anime, newest-created-first.
func (r *commentRepository) ListByAnime(ctx context.Context, animeID, limit, offset int) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).
		Where("anime_id = ?", animeID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
