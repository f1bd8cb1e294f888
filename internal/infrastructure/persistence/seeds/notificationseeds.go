// Package seeds installs the default rows a fresh panel needs.
package seeds

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tansyhq/tansy/internal/infrastructure/persistence/models"
)

// SeedNotificationDefaults installs the stock expiry reminder rule on a
// fresh database. Existing rules are never touched.
func SeedNotificationDefaults(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.NotificationRuleModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count notification rules: %w", err)
	}
	if count > 0 {
		return nil
	}

	offsets, err := json.Marshal([]int{30, 14, 7, 3, 1})
	if err != nil {
		return fmt.Errorf("failed to encode default offsets: %w", err)
	}

	rule := models.NotificationRuleModel{
		Name:         "hosting-expiry-reminders",
		Class:        "expiry",
		EntityScope:  "hosting",
		Offsets:      datatypes.JSON(offsets),
		FallbackMode: "primaryContact",
		Enabled:      true,
		Version:      1,
	}

	if err := db.Create(&rule).Error; err != nil {
		return fmt.Errorf("failed to seed default expiry rule: %w", err)
	}

	return nil
}
