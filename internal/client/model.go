package client

import (
	"time"

	"gorm.io/gorm"
)

// Client is a business the agency works with. Created by admins, referenced
// by agreements through ClientID.
type Client struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BusinessName string    `gorm:"size:255;not null" json:"businessName"`
	ContactName  string    `gorm:"size:255" json:"contactName"`
	Email        string    `gorm:"size:255;index" json:"email"`
	Phone        string    `gorm:"size:50" json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Client) TableName() string {
	return "clients"
}

// Migrate creates the clients table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Client{})
}
