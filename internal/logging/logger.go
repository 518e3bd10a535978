package logging

import (
	"io"
	"log/slog"
	"os"

	"dealership-backoffice/internal/config"
)

type LoggerService interface {
	Log(value string)
	LogError(value string, err error)
	LogWarning(value string)
	LogSuccess(value string)
}

type consoleLogger struct {
	logger *slog.Logger
}

func NewConsoleLogger(w io.Writer) LoggerService {
	if w == nil {
		w = os.Stdout
	}
	return &consoleLogger{logger: slog.New(slog.NewTextHandler(w, nil))}
}

func (c *consoleLogger) Log(value string) {
	c.logger.Info(value)
}

func (c *consoleLogger) LogError(value string, err error) {
	if err != nil {
		c.logger.Error(value, "err", err)
		return
	}
	c.logger.Error(value)
}

func (c *consoleLogger) LogWarning(value string) {
	c.logger.Warn(value)
}

func (c *consoleLogger) LogSuccess(value string) {
	c.logger.Info(value, "status", "success")
}

type multiLogger []LoggerService

func (m multiLogger) Log(value string) {
	for _, l := range m {
		l.Log(value)
	}
}

func (m multiLogger) LogError(value string, err error) {
	for _, l := range m {
		l.LogError(value, err)
	}
}

func (m multiLogger) LogWarning(value string) {
	for _, l := range m {
		l.LogWarning(value)
	}
}

func (m multiLogger) LogSuccess(value string) {
	for _, l := range m {
		l.LogSuccess(value)
	}
}

// NewLogger writes to stdout and, when credentials are present, to Telegram.
func NewLogger(cfg config.TelegramBotConfig) LoggerService {
	console := NewConsoleLogger(os.Stdout)
	telegram := NewTelegramLogger(&Creds{Creds: cfg})
	if telegram == nil {
		console.LogWarning("telegram credentials missing")
		return console
	}
	return multiLogger{console, telegram}
}

// Nop discards everything; handy for tests and optional wiring.
type Nop struct{}

func (Nop) Log(string)             {}
func (Nop) LogError(string, error) {}
func (Nop) LogWarning(string)      {}
func (Nop) LogSuccess(string)      {}
