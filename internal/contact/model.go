package contact

import (
	"time"

	"gorm.io/gorm"
)

// Lead is an inbound contact-form submission.
type Lead struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Email       string    `gorm:"size:255;not null;index" json:"email"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Company     string    `gorm:"size:255" json:"company"`
	Budget      string    `gorm:"size:100" json:"budget"`
	ProjectType string    `gorm:"size:100" json:"projectType"`
	Message     string    `gorm:"type:text" json:"message"`
	Source      string    `gorm:"size:50;not null;default:'website'" json:"source"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Lead) TableName() string {
	return "contacts"
}

// Migrate creates the contacts table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Lead{})
}
