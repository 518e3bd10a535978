// cron job: reports offers whose end date passed while they are still active
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"dealership-backoffice/internal/adapters/odoo"
	"dealership-backoffice/internal/app/usecases"
	"dealership-backoffice/internal/config"
	"dealership-backoffice/internal/logging"
)

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

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := odoo.NewClient(cfg.Odoo, nil, cfg.DefaultLocale, logger)
	offers := usecases.NewOfferController(odoo.NewOfferService(client, logger), nil, logger)

	now := time.Now()
	expired, err := offers.ExpiredActive(ctx, now)
	if err != nil {
		logger.LogError("offer status check failed", err)
		return err
	}
	if len(expired) == 0 {
		logger.LogSuccess("no expired active offers")
		return nil
	}

	lines := make([]string, 0, len(expired))
	for _, o := range expired {
		lines = append(lines, fmt.Sprintf("#%d %s (ended %s)", o.ID, o.Name.Resolve(cfg.DefaultLocale), o.EndDate.Format(time.DateOnly)))
	}
	logger.LogWarning(fmt.Sprintf("%d expired offers still active:\n%s", len(expired), strings.Join(lines, "\n")))
	return nil
}
