package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tansyhq/tansy/internal/infrastructure/persistence/models"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

// AutoMigrateModels lists every GORM model the schema carries.
func AutoMigrateModels() []any {
	return []any{
		&models.ClientModel{},
		&models.HostingRecordModel{},
		&models.MessageTemplateModel{},
		&models.NotificationRuleModel{},
		&models.DispatchRecordModel{},
		&models.SettingModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from struct definitions.
// Development only; versioned scripts own the schema everywhere else.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...any) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	s.logger.Infow("starting GORM auto migration", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	s.logger.Infow("GORM auto migration completed")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
