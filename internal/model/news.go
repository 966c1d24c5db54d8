package model

import "time"

// News is a locally authored article. CreatedAt is set once on creation;
// UpdatedAt is refreshed by GORM on every update.
type News struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	ImageURL  *string   `json:"image_url,omitempty" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name used by GORM.
func (News) TableName() string {
	return "news"
}
