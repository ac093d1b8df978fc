package auth

import (
	"time"

	"gorm.io/gorm"
)

// User is a portal or admin account. Admin privilege is not stored here; it
// is decided by the AdminPolicy at login time.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name         string    `gorm:"size:255" json:"name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// Migrate creates the users table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{})
}
