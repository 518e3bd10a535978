package logging

import (
	"fmt"
	"strings"
	"time"

	"dealership-backoffice/internal/config"

	"github.com/go-resty/resty/v2"
)

const telegramAPI = "https://api.telegram.org"

type Creds struct {
	Creds   config.TelegramBotConfig
	client  *resty.Client
	baseURL string
}

type telegramRequest struct {
	ChatId string `json:"chat_id"`
	Text   string `json:"text"`
}

const (
	iconInfo    = "ℹ️"
	iconError   = "❌"
	iconWarning = "⚠️"
	iconSuccess = "✅"
)

// NewTelegramLogger returns nil when credentials are incomplete.
func NewTelegramLogger(cfg *Creds) *Creds {
	if cfg == nil || cfg.Creds.ChatId == "" || cfg.Creds.Token == "" {
		return nil
	}
	client := cfg.client
	if client == nil {
		client = resty.New().SetTimeout(10 * time.Second)
	}
	baseURL := cfg.baseURL
	if baseURL == "" {
		baseURL = telegramAPI
	}
	return &Creds{Creds: cfg.Creds, client: client, baseURL: baseURL}
}

func (c *Creds) Log(value string) {
	if c == nil {
		return
	}
	_ = c.sendRequest(formatMessage(iconInfo, "INFO", value))
}

func (c *Creds) LogError(value string, err error) {
	if c == nil {
		return
	}
	if err != nil {
		value = fmt.Sprintf("%s: %v", value, err)
	}
	_ = c.sendRequest(formatMessage(iconError, "ERROR", value))
}

func (c *Creds) LogWarning(value string) {
	if c == nil {
		return
	}
	_ = c.sendRequest(formatMessage(iconWarning, "WARNING", value))
}

func (c *Creds) LogSuccess(value string) {
	if c == nil {
		return
	}
	_ = c.sendRequest(formatMessage(iconSuccess, "SUCCESS", value))
}

func formatMessage(icon, level, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		v = "-"
	}
	return fmt.Sprintf("%s %s: %s", icon, level, v)
}

func (c *Creds) sendRequest(value string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(c.baseURL, "/"), c.Creds.Token)

	resp, err := c.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(telegramRequest{ChatId: c.Creds.ChatId, Text: value}).
		Post(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("telegram send failed: %s", resp.Status())
	}
	return nil
}
