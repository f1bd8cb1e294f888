package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/tansyhq/tansy/internal/shared/constants"
)

// ClientModel is the GORM model for clients. Carried for the contact join of
// hosting snapshots; client CRUD lives outside the notification engine.
type ClientModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Company   string `gorm:"size:100"`
	Email     string `gorm:"size:255;not null;index"`
	TechEmail string `gorm:"size:255"`
	Status    string `gorm:"size:20;not null;default:'active'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ClientModel) TableName() string {
	return constants.TableClients
}
