package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tansyhq/tansy/internal/shared/constants"
)

// MessageTemplateModel is the GORM model for message_templates. ToSpecs and
// CcSpecs store the ordered recipient spec lists as JSON.
type MessageTemplateModel struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"size:100;not null;uniqueIndex"`
	Subject   string         `gorm:"size:255;not null"`
	Body      string         `gorm:"type:longtext;not null"`
	ToSpecs   datatypes.JSON `gorm:"column:to_specs"`
	CcSpecs   datatypes.JSON `gorm:"column:cc_specs"`
	Enabled   bool           `gorm:"not null;default:true"`
	Version   int            `gorm:"not null;default:1"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (MessageTemplateModel) TableName() string {
	return constants.TableMessageTemplates
}
