package models

import (
	"time"

	"github.com/tansyhq/tansy/internal/shared/constants"
)

// DispatchRecordModel is the GORM model for dispatch_records. Rows are
// append-only; idx_dispatch_tuple backs the suppression lookup of the
// automatic expiry pass.
type DispatchRecordModel struct {
	ID          uint      `gorm:"primaryKey"`
	Kind        string    `gorm:"size:20;not null;index:idx_dispatch_tuple"`
	ReferenceID uint      `gorm:"not null;index:idx_dispatch_tuple"`
	Recipient   string    `gorm:"size:255;not null;index:idx_dispatch_tuple"`
	Subject     string    `gorm:"size:255"`
	Status      string    `gorm:"size:20;not null"`
	Detail      string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (DispatchRecordModel) TableName() string {
	return constants.TableDispatchRecords
}
