package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tansyhq/tansy/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.NotificationRuleModel{},
		&models.MessageTemplateModel{},
		&models.DispatchRecordModel{},
		&models.HostingRecordModel{},
		&models.ClientModel{},
		&models.SettingModel{},
	)
	require.NoError(t, err)

	return db
}

func seedClient(t *testing.T, db *gorm.DB, id uint, email, techEmail string) {
	t.Helper()
	require.NoError(t, db.Create(&models.ClientModel{
		ID:        id,
		Name:      "Test Client",
		Company:   "Test Co",
		Email:     email,
		TechEmail: techEmail,
		Status:    "active",
	}).Error)
}

func seedHosting(t *testing.T, db *gorm.DB, id, clientID uint, domain string, expiresAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.HostingRecordModel{
		ID:         id,
		DomainName: domain,
		PlanName:   "basic",
		Status:     "active",
		ClientID:   clientID,
		ExpiresAt:  expiresAt,
	}).Error)
}
