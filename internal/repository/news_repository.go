package repository

import (
	"context"

	"gorm.io/gorm"

	"animehub/internal/model"
)

// NewsRepository defines news persistence operations. Update and Delete
// report rows affected so the service layer can derive not-found from a
// zero count instead of a store error.
type NewsRepository interface {
	Create(ctx context.Context, news *model.News) error
	FindByID(ctx context.Context, id uint) (*model.News, error)
	List(ctx context.Context, limit, offset int) ([]model.News, error)
	Update(ctx context.Context, id uint, title, content string, imageURL *string) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create creates a new news article.
func (r *newsRepository) Create(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Create(news).Error
}

// FindByID finds a news article by ID.
func (r *newsRepository) FindByID(ctx context.Context, id uint) (*model.News, error) {
	var news model.News
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&news).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

// List returns news articles newest-created-first.
func (r *newsRepository) List(ctx context.Context, limit, offset int) ([]model.News, error) {
	var news []model.News
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

// Update rewrites the mutable fields of an article. GORM refreshes
// updated_at as part of the statement; created_at is left untouched.
func (r *newsRepository) Update(ctx context.Context, id uint, title, content string, imageURL *string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.News{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":     title,
			"content":   content,
			"image_url": imageURL,
		})
	return res.RowsAffected, res.Error
}

// Delete removes an article by ID.
func (r *newsRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.News{}, id)
	return res.RowsAffected, res.Error
}
