package activity

import (
	"context"
	"time"

	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

const writeTimeout = 5 * time.Second

// Journal records every notification it receives. Store failures are logged
// and never reach the action that produced the notification.
type Journal struct {
	store  Store
	logger logging.LoggerService
}

func NewJournal(store Store, logger logging.LoggerService) *Journal {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Journal{store: store, logger: logger}
}

func (j *Journal) Notify(n model.Notification) {
	entry, err := EntryFromNotification(n)
	if err != nil {
		j.logger.LogError("activity: encode notification", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := j.store.Write(ctx, entry); err != nil {
		j.logger.LogError("activity: store notification", err)
	}
}

func (j *Journal) Recent(ctx context.Context, q Query) ([]Entry, error) {
	return j.store.Recent(ctx, q)
}
