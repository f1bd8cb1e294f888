package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/tansyhq/tansy/internal/shared/constants"
)

// HostingRecordModel is the GORM model for hosting_records. The notification
// engine only reads these rows; their lifecycle belongs to the panel's CRUD
// surface.
type HostingRecordModel struct {
	ID               uint   `gorm:"primaryKey"`
	DomainName       string `gorm:"size:255;not null;index"`
	PlanName         string `gorm:"size:100"`
	Status           string `gorm:"size:20;not null;default:'active';index"`
	ClientID         uint   `gorm:"not null;index"`
	DomainOwnerEmail string `gorm:"size:255"`
	DomainTechEmail  string `gorm:"size:255"`
	ExpiresAt        time.Time `gorm:"not null;index"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (HostingRecordModel) TableName() string {
	return constants.TableHostingRecords
}
