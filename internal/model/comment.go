package model

import "time"

// Comment is a public comment attached to an upstream anime ID. Comments are
// create-only: there is no update or delete path. AnimeID references an
// upstream entity and is not validated against it.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AnimeID   int       `json:"anime_id" gorm:"index;not null"`
	Username  string    `json:"username" gorm:"size:50;not null"`
	Comment   string    `json:"comment" gorm:"size:1000;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name used by GORM.
func (Comment) TableName() string {
	return "comments"
}
