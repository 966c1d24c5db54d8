package model

import "time"

// Admin is a portal administrator. The system runs with a single seeded
// admin; Password always holds a bcrypt hash, never plaintext.
type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name used by GORM.
func (Admin) TableName() string {
	return "admins"
}
