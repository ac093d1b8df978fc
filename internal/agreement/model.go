package agreement

import (
	"time"

	"gorm.io/gorm"
)

// StatusSigned is the status every agreement created through the signing flow
// starts with. Later status changes happen in the admin surface, not here.
const StatusSigned = "signed"

// Record is a finalized agreement. Immutable once written by this flow.
type Record struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AgreementNumber string `gorm:"size:50;not null;index" json:"agreementNumber"`
	AgreementDate   string `gorm:"size:20;not null" json:"agreementDate"`

	ClientBusinessName string `gorm:"size:255;not null" json:"clientBusinessName"`
	ClientContactName  string `gorm:"size:255;not null" json:"clientContactName"`
	ClientEmail        string `gorm:"size:255;not null;index" json:"clientEmail"`
	ClientPhone        string `gorm:"size:50;not null" json:"clientPhone"`
	ClientTitle        string `gorm:"size:255" json:"clientTitle"`
	ClientID           string `gorm:"size:64" json:"clientId"`

	SelectedPackage        string  `gorm:"size:50;not null" json:"selectedPackage"`
	CustomBuildFee         float64 `gorm:"not null;default:0" json:"customBuildFee"` // resolved build fee
	CustomBuildDescription string  `gorm:"type:text" json:"customBuildDescription"`
	SelectedRevShare       string  `gorm:"size:50" json:"selectedRevShare"`
	SelectedMaintenance    string  `gorm:"size:50" json:"selectedMaintenance"`
	TotalDueAtSigning      float64 `gorm:"not null;default:0" json:"totalDueAtSigning"`

	SignatureData string `gorm:"type:text" json:"signatureData"` // data URI
	Status        string `gorm:"size:50;not null;default:'signed'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Record) TableName() string {
	return "agreements"
}

// Migrate creates the agreements table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Record{})
}
