package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"dealership-backoffice/internal/domain/model"

	"github.com/joho/godotenv"
)

const (
	defaultOdooURL    = "https://portal.alromaihcars.com/graphql"
	defaultTimeout    = 30 * time.Second
	defaultRetries    = 3
	defaultRetryDelay = time.Second
	defaultHTTPAddr   = ":8080"
)

// Load reads the process environment, after merging an optional .env file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	var cfg Config

	apiKey, err := requriedString("API_KEY")
	if err != nil {
		return Config{}, err
	}
	timeout, err := millisWithDefault("ODOO_TIMEOUT_MS", defaultTimeout)
	if err != nil {
		return Config{}, err
	}
	retries, err := intWithDefault("ODOO_RETRIES", defaultRetries)
	if err != nil {
		return Config{}, err
	}
	retryDelay, err := millisWithDefault("ODOO_RETRY_DELAY_MS", defaultRetryDelay)
	if err != nil {
		return Config{}, err
	}
	cfg.Odoo = OdooConfig{
		BaseUrl:    stringWithDefault("ODOO_GRAPHQL_URL", defaultOdooURL),
		ApiKey:     apiKey,
		Timeout:    timeout,
		Retries:    retries,
		RetryDelay: retryDelay,
	}

	port, err := intWithDefault("MYSQL_PORT", 3306)
	if err != nil {
		return Config{}, err
	}
	cfg.Mysql = MysqlConfig{
		Host:     stringWithDefault("MYSQL_HOST", ""),
		Port:     port,
		Username: stringWithDefault("MYSQL_USER", ""),
		Password: stringWithDefault("MYSQL_PASSWORD", ""),
		Database: stringWithDefault("MYSQL_DATABASE", ""),
	}

	cfg.TelegramBot = TelegramBotConfig{
		ChatId: stringWithDefault("TELEGRAM_CHAT_ID", ""),
		Token:  stringWithDefault("TELEGRAM_TOKEN", ""),
	}

	cfg.HTTP = HTTPConfig{
		Addr:        stringWithDefault("HTTP_ADDR", defaultHTTPAddr),
		CorsOrigins: listWithDefault("CORS_ORIGINS", []string{"*"}),
	}

	cfg.DefaultLocale = model.Locale(strings.TrimSpace(stringWithDefault("DEFAULT_LOCALE", string(model.LocaleEnglish))))

	return cfg, nil
}
