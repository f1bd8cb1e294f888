package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tansyhq/tansy/internal/shared/constants"
)

// NotificationRuleModel is the GORM model for notification_rules. Expiry
// rules carry Offsets; recurring rules carry the cadence columns.
type NotificationRuleModel struct {
	ID             uint           `gorm:"primaryKey"`
	Name           string         `gorm:"size:100;not null"`
	Class          string         `gorm:"size:20;not null;index:idx_class_enabled"`
	EntityScope    string         `gorm:"size:20"`
	Offsets        datatypes.JSON `gorm:"column:offsets"`
	Frequency      string         `gorm:"size:20"`
	AtHour         int            `gorm:"not null;default:0"`
	AtMinute       int            `gorm:"not null;default:0"`
	Weekday        int            `gorm:"not null;default:1"`
	MonthDay       int            `gorm:"not null;default:0"`
	Category       string         `gorm:"size:20"`
	TemplateID     *uint          `gorm:"index"`
	FallbackMode   string         `gorm:"size:20;not null;default:'primaryContact'"`
	FallbackAddr   string         `gorm:"size:255"`
	AttachReport   bool           `gorm:"not null;default:false"`
	Enabled        bool           `gorm:"not null;default:true;index:idx_class_enabled"`
	LastDispatchAt *time.Time
	Version        int       `gorm:"not null;default:1"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (NotificationRuleModel) TableName() string {
	return constants.TableNotificationRules
}
