package config

import (
	"time"

	"dealership-backoffice/internal/domain/model"
)

type Config struct {
	Odoo          OdooConfig
	Mysql         MysqlConfig
	TelegramBot   TelegramBotConfig
	HTTP          HTTPConfig
	DefaultLocale model.Locale
}

type OdooConfig struct {
	BaseUrl    string
	ApiKey     string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

type MysqlConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
}

func (c MysqlConfig) Enabled() bool {
	return c.Host != ""
}

type TelegramBotConfig struct {
	ChatId string
	Token  string
}

type HTTPConfig struct {
	Addr        string
	CorsOrigins []string
}
