// back-office API: serves the dashboard and pushes notifications over websocket
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dealership-backoffice/internal/activity"
	"dealership-backoffice/internal/adapters/odoo"
	"dealership-backoffice/internal/api"
	"dealership-backoffice/internal/app/usecases"
	"dealership-backoffice/internal/config"
	"dealership-backoffice/internal/infra/mysql"
	"dealership-backoffice/internal/logging"
	"dealership-backoffice/internal/notify"
)

const notificationHistory = 100

func main() {
	if err := run(); err != nil {
		fmt.Printf("error %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.NewLogger(cfg.TelegramBot)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openActivityStore(ctx, cfg.Mysql, logger)
	if err != nil {
		logger.LogError("activity store error", err)
		return err
	}
	defer closeStore()

	hub := notify.NewHub(notificationHistory, logger)
	defer hub.Close()
	journal := activity.NewJournal(store, logger)
	notifier := usecases.MultiNotifier{hub, journal}

	client := odoo.NewClient(cfg.Odoo, nil, cfg.DefaultLocale, logger)
	attributes := odoo.NewAttributeService(client, logger)
	categories := odoo.NewCategoryService(client, logger)
	settings := odoo.NewSettingsService(client, logger)

	router := api.NewRouter(api.Deps{
		Attributes: usecases.NewAttributeController(attributes, odoo.NewAttributeValueService(client, logger), notifier, logger),
		Categories: usecases.NewCategoryController(categories, notifier, logger),
		Templates:  usecases.NewTemplateController(odoo.NewTemplateService(client, logger), notifier, logger),
		Cars:       usecases.NewCarController(odoo.NewCarService(client, cfg.DefaultLocale, logger), notifier, logger),
		Offers:     usecases.NewOfferController(odoo.NewOfferService(client, logger), notifier, logger),
		Media:      usecases.NewMediaController(odoo.NewMediaService(client, logger), notifier, logger),
		Settings: func() *usecases.SettingsForm {
			return usecases.NewSettingsForm(settings, notifier, logger)
		},
		References:  usecases.NewReferenceLoader(odoo.NewReferenceService(client, logger), attributes, categories, logger),
		Hub:         hub,
		Journal:     journal,
		Locale:      cfg.DefaultLocale,
		Logger:      logger,
		CorsOrigins: cfg.HTTP.CorsOrigins,
	})

	logger.Log("back-office started")
	if err := api.Run(ctx, cfg.HTTP, router, logger); err != nil {
		logger.LogError("http server error", err)
		return err
	}
	return nil
}

// openActivityStore uses MySQL when it is configured and keeps the journal in
// memory otherwise.
func openActivityStore(ctx context.Context, cfg config.MysqlConfig, logger logging.LoggerService) (activity.Store, func(), error) {
	if !cfg.Enabled() {
		logger.LogWarning("mysql not configured, activity journal kept in memory")
		return activity.NewMemoryStore(0), func() {}, nil
	}
	db, err := mysql.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	gdb, err := mysql.NewGorm(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	store := activity.NewGormStore(gdb)
	if err := store.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("activity migrate: %w", err)
	}
	return store, func() { _ = db.Close() }, nil
}
