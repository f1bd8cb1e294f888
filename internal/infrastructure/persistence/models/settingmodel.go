package models

import (
	"time"

	"github.com/tansyhq/tansy/internal/shared/constants"
)

// SettingModel is the GORM model for the settings table.
type SettingModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Category    string    `gorm:"column:category;type:varchar(100);not null;uniqueIndex:idx_category_key"`
	SettingKey  string    `gorm:"column:setting_key;type:varchar(100);not null;uniqueIndex:idx_category_key"`
	Value       string    `gorm:"column:value;type:text"`
	ValueType   string    `gorm:"column:value_type;type:varchar(20);not null;default:'string'"`
	Description string    `gorm:"column:description;type:varchar(500)"`
	Version     int       `gorm:"column:version;default:1"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (SettingModel) TableName() string {
	return constants.TableSettings
}
