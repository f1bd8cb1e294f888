// The worker binary runs the notification passes without the admin API.
// Use it to split scheduling from the HTTP panel; the Redis pass lock keeps
// a worker and a scheduler-enabled server from double-sending.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	notificationUC "github.com/tansyhq/tansy/internal/application/notification/usecases"
	settingUC "github.com/tansyhq/tansy/internal/application/setting/usecases"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/infrastructure/cache"
	"github.com/tansyhq/tansy/internal/infrastructure/config"
	"github.com/tansyhq/tansy/internal/infrastructure/database"
	"github.com/tansyhq/tansy/internal/infrastructure/email"
	"github.com/tansyhq/tansy/internal/infrastructure/files"
	"github.com/tansyhq/tansy/internal/infrastructure/report"
	"github.com/tansyhq/tansy/internal/infrastructure/repository"
	"github.com/tansyhq/tansy/internal/infrastructure/scheduler"
	"github.com/tansyhq/tansy/internal/shared/biztime"
	"github.com/tansyhq/tansy/internal/shared/logger"
	"github.com/tansyhq/tansy/internal/shared/services/markdown"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewLogger()

	log.Infow("starting notification worker", "environment", env)

	biztime.MustInit(cfg.Business.Timezone)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()
	db := database.Get()

	var passLock cache.PassLock
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		passLock = cache.NewRedisPassLock(redisClient)
		log.Infow("redis pass lock enabled", "address", cfg.Redis.GetAddr())
	}

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
	if err := mailManager.Initialize(context.Background()); err != nil {
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

	recurringUC := notificationUC.NewRecurringPassUseCase(
		ruleRepo, templateRepo, ledger, mailer,
		renderer, reports, settingProvider, sendTimeout, log,
	)
	sweepUC := notificationUC.NewExpirySweepUseCase(
		ruleRepo, templateRepo, ledger, sources, mailer,
		renderer, attachments, reports, settingProvider, sendTimeout, log,
	)

	manager, err := scheduler.NewSchedulerManager(passLock, log)
	if err != nil {
		log.Fatalw("failed to create scheduler", "error", err)
	}
	if err := manager.RegisterNotificationJobs(recurringUC, sweepUC, &cfg.Notifier); err != nil {
		log.Fatalw("failed to register notification jobs", "error", err)
	}
	manager.Start()

	log.Infow("notification worker started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	log.Infow("received signal, shutting down", "signal", sig.String())

	if err := manager.Stop(); err != nil {
		log.Errorw("failed to stop scheduler", "error", err)
	}

	log.Infow("notification worker stopped")
}
