package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"

	"github.com/google/uuid"
)

// Notifier receives one notification per completed (or failed) mutation.
type Notifier interface {
	Notify(n model.Notification)
}

type MultiNotifier []Notifier

func (m MultiNotifier) Notify(n model.Notification) {
	for _, notifier := range m {
		if notifier != nil {
			notifier.Notify(n)
		}
	}
}

// Confirmer gates destructive actions. A declined confirmation never reaches the backend.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// Confirmed answers every prompt with ok; used where confirmation arrived out of band.
func Confirmed(ok bool) Confirmer {
	return ConfirmFunc(func(context.Context, string) bool { return ok })
}

type Result[T any] struct {
	Success bool              `json:"success"`
	Data    T                 `json:"data"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Err     error             `json:"-"`
}

type reporter struct {
	notifier Notifier
	logger   logging.LoggerService
	now      func() time.Time
}

func newReporter(notifier Notifier, logger logging.LoggerService) reporter {
	if logger == nil {
		logger = logging.Nop{}
	}
	return reporter{notifier: notifier, logger: logger, now: time.Now}
}

func (r reporter) success(entity, action string, id int64, message string) {
	r.logger.LogSuccess(message)
	r.emit(model.Notification{
		Level:    model.LevelSuccess,
		Title:    "Success",
		Message:  message,
		Entity:   entity,
		Action:   action,
		EntityID: id,
	})
}

// failure notifies and returns the user-facing message. Validation errors are
// shown as their field summary; anything else as "Failed to <verb> <entity>".
func (r reporter) failure(entity, action string, id int64, err error) string {
	message := fmt.Sprintf("Failed to %s %s", action, entity)
	var validation *model.ValidationError
	if errors.As(err, &validation) {
		message = validation.Error()
		r.logger.LogWarning(message)
	} else {
		r.logger.LogError(message, err)
	}
	r.emit(model.Notification{
		Level:    model.LevelError,
		Title:    "Error",
		Message:  message,
		Entity:   entity,
		Action:   action,
		EntityID: id,
	})
	return message
}

func (r reporter) emit(n model.Notification) {
	if r.notifier == nil {
		return
	}
	n.ID = uuid.NewString()
	n.At = r.now()
	r.notifier.Notify(n)
}

// confirm runs the gate before any destructive call.
func confirm(ctx context.Context, confirmer Confirmer, prompt string) error {
	if confirmer == nil || !confirmer.Confirm(ctx, prompt) {
		return model.ErrNotConfirmed
	}
	return nil
}
