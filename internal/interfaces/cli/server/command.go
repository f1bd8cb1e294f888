// Package server implements the tansy server command: the admin HTTP API
// plus, when enabled, the in-process notification scheduler.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	notificationUC "github.com/tansyhq/tansy/internal/application/notification/usecases"
	settingUC "github.com/tansyhq/tansy/internal/application/setting/usecases"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/infrastructure/cache"
	"github.com/tansyhq/tansy/internal/infrastructure/config"
	"github.com/tansyhq/tansy/internal/infrastructure/database"
	"github.com/tansyhq/tansy/internal/infrastructure/email"
	"github.com/tansyhq/tansy/internal/infrastructure/files"
	"github.com/tansyhq/tansy/internal/infrastructure/migration"
	"github.com/tansyhq/tansy/internal/infrastructure/persistence/seeds"
	"github.com/tansyhq/tansy/internal/infrastructure/report"
	"github.com/tansyhq/tansy/internal/infrastructure/repository"
	"github.com/tansyhq/tansy/internal/infrastructure/scheduler"
	httpRouter "github.com/tansyhq/tansy/internal/interfaces/http"
	"github.com/tansyhq/tansy/internal/interfaces/http/handlers"
	"github.com/tansyhq/tansy/internal/shared/biztime"
	sharedDB "github.com/tansyhq/tansy/internal/shared/db"
	"github.com/tansyhq/tansy/internal/shared/logger"
	"github.com/tansyhq/tansy/internal/shared/services/markdown"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the admin API and notification scheduler",
		Long:  `Start the Tansy HTTP server. When the notifier is enabled in configuration, the expiry sweep and recurring report passes run in the same process.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server",
		"environment", env,
		"notifier_enabled", cfg.Notifier.Enabled,
		"auto_migrate", autoMigrate,
	)

	if err := biztime.Init(cfg.Business.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()
	db := database.Get()

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production, this is not recommended")
		}
		manager := migration.NewManager(env)
		if err := manager.Migrate(db, migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		if err := seeds.SeedNotificationDefaults(db); err != nil {
			return fmt.Errorf("failed to seed notification defaults: %w", err)
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}

	// Settings: database-first with environment fallback, hot-reloaded on
	// admin API writes.
	settingRepo := repository.NewSettingRepository(db)
	settingProvider := settingUC.NewSettingProvider(settingRepo, settingUC.SettingProviderConfig{
		EmailConfig:  cfg.Email,
		PanelBaseURL: cfg.Server.BaseURL,
		Timezone:     cfg.Business.Timezone,
		CompanyName:  cfg.Business.CompanyName,
		AdminEmail:   cfg.Business.AdminEmail,
		LogoURL:      cfg.Business.LogoURL,
	}, log)

	mailManager := email.NewMailServiceManager(settingProvider, log)
	if err := mailManager.Initialize(cmd.Context()); err != nil {
		log.Warnw("mailer not available at startup, sends will fail until configured", "error", err)
	}
	settingProvider.Subscribe(mailManager)
	mailer := email.NewDynamicMailer(mailManager, log)

	ruleRepo := repository.NewNotificationRuleRepository(db)
	templateRepo := repository.NewMessageTemplateRepository(db)
	ledger := repository.NewDispatchRecordRepository(db)
	hostingRepo := repository.NewHostingRecordRepository(db)

	sources := notificationUC.SourceRegistry{
		vo.EntityScopeHosting: hostingRepo,
	}

	renderer := report.NewHTMLRenderer(markdown.NewService())
	attachments := files.NewDirAttachmentResolver(cfg.Notifier.AttachmentDir, log)
	reports := notificationUC.NewReportBuilder(hostingRepo, cfg.Notifier.ReportLookaheadDays, log)
	sendTimeout := time.Duration(cfg.Notifier.SendTimeout) * time.Second

	triggerUC := notificationUC.NewTriggerRuleUseCase(
		ruleRepo, templateRepo, ledger, sources, mailer,
		renderer, attachments, reports, settingProvider, sendTimeout, log,
	)
	listDispatchesUC := notificationUC.NewListDispatchesUseCase(ledger, log)
	getSettingsUC := settingUC.NewGetSettingsUseCase(settingRepo, log)
	txManager := sharedDB.NewTransactionManager(db)
	updateSettingsUC := settingUC.NewUpdateSettingsUseCase(settingRepo, txManager, settingProvider, log)

	router := httpRouter.NewRouter(cfg, httpRouter.Handlers{
		Health:       handlers.NewHealthHandler(db, log),
		Notification: handlers.NewNotificationHandler(triggerUC, listDispatchesUC, log),
		Setting:      handlers.NewSettingHandler(getSettingsUC, updateSettingsUC, log),
	}, log)

	var schedulerManager *scheduler.SchedulerManager
	if cfg.Notifier.Enabled {
		var passLock cache.PassLock
		if redisClient != nil {
			passLock = cache.NewRedisPassLock(redisClient)
		}

		schedulerManager, err = scheduler.NewSchedulerManager(passLock, log)
		if err != nil {
			return fmt.Errorf("failed to create scheduler: %w", err)
		}

		recurringUC := notificationUC.NewRecurringPassUseCase(
			ruleRepo, templateRepo, ledger, mailer,
			renderer, reports, settingProvider, sendTimeout, log,
		)
		sweepUC := notificationUC.NewExpirySweepUseCase(
			ruleRepo, templateRepo, ledger, sources, mailer,
			renderer, attachments, reports, settingProvider, sendTimeout, log,
		)

		if err := schedulerManager.RegisterNotificationJobs(recurringUC, sweepUC, &cfg.Notifier); err != nil {
			return fmt.Errorf("failed to register notification jobs: %w", err)
		}
		schedulerManager.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- router.Start(cfg.Server.GetAddr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-quit:
		log.Infow("shutting down", "signal", sig.String())
	}

	if schedulerManager != nil {
		if err := schedulerManager.Stop(); err != nil {
			log.Errorw("failed to stop scheduler", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := router.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}
