// The worker runs the scheduled maintenance jobs: the nightly expiry sweep
// and the expiring-membership email reminders.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	memberUsecases "gymdesk/internal/application/member/usecases"
	notificationUsecases "gymdesk/internal/application/notification/usecases"
	"gymdesk/internal/infrastructure/config"
	"gymdesk/internal/infrastructure/database"
	"gymdesk/internal/infrastructure/email"
	"gymdesk/internal/infrastructure/repository"
	"gymdesk/internal/infrastructure/scheduler"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/constants"
	"gymdesk/internal/shared/logger"
)

func main() {
	env := constants.EnvDevelopment
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

	if err := logger.Init(&cfg.Logger, env == constants.EnvDevelopment); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting maintenance worker", "environment", env)

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		logger.Fatal("failed to initialize business timezone", "error", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	memberRepo := repository.NewMemberRepository(database.Get(), log)
	notificationRepo := repository.NewNotificationRepository(database.Get(), log)

	expireUC := memberUsecases.NewExpireMembersUseCase(memberRepo, log)
	expireUC.SetEmitter(notificationUsecases.NewStoreEmitter(notificationRepo, log))

	manager := scheduler.NewSchedulerManager(log)

	if err := manager.RegisterExpirySweepJob(cfg.Worker.ExpirySweepSchedule, expireUC); err != nil {
		logger.Fatal("failed to register expiry sweep job", "error", err)
	}

	if cfg.Worker.RemindersEnabled {
		if cfg.Email.SMTPHost == "" {
			log.Warnw("reminders enabled but SMTP host is not configured, skipping reminder job")
		} else {
			sender := email.NewSMTPEmailService(email.SMTPConfig{
				Host:        cfg.Email.SMTPHost,
				Port:        cfg.Email.SMTPPort,
				Username:    cfg.Email.SMTPUser,
				Password:    cfg.Email.SMTPPassword,
				FromAddress: cfg.Email.FromAddress,
				FromName:    cfg.Email.FromName,
			})

			remindUC := memberUsecases.NewRemindExpiringUseCase(
				memberRepo, sender, cfg.Worker.ReminderLeadDays, cfg.Worker.ReminderBatchSize, log,
			)

			if err := manager.RegisterReminderJob(cfg.Worker.ReminderSchedule, remindUC); err != nil {
				logger.Fatal("failed to register reminder job", "error", err)
			}
		}
	}

	manager.Start()
	log.Infow("maintenance worker started",
		"expiry_sweep_schedule", cfg.Worker.ExpirySweepSchedule,
		"reminders_enabled", cfg.Worker.RemindersEnabled,
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	log.Infow("received signal, shutting down", "signal", sig)
	manager.Stop()
	log.Infow("maintenance worker stopped")
}
