package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds every static setting the service needs. It is loaded once in
// main and passed into the handlers; nothing reads the environment after
// startup.
//
// Gateway and Telegram credentials are optional on purpose: the service keeps
// serving leads and webhooks without them, and the affected endpoints answer
// server_misconfigured instead.
type Config struct {
	ListenAddr     string   `env:"LISTEN_ADDR" envDefault:":8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,required" envSeparator:","`

	PricesFile string `env:"PRICES_FILE"`

	GatewayBaseURL        string        `env:"GATEWAY_BASE_URL"`
	GatewayClientID       string        `env:"GATEWAY_CLIENT_ID"`
	GatewayClientSecret   string        `env:"GATEWAY_CLIENT_SECRET"`
	GatewayTimeout        time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"15s"`
	InvoiceGatewayTimeout time.Duration `env:"INVOICE_GATEWAY_TIMEOUT" envDefault:"12s"`
	PaymentCurrency       string        `env:"PAYMENT_CURRENCY" envDefault:"EUR"`
	PaymentMethod         string        `env:"PAYMENT_METHOD" envDefault:"card"`
	WebhookURL            string        `env:"WEBHOOK_URL"`

	TelegramToken  string `env:"TELEGRAM_TOKEN"`
	TelegramChatID int64  `env:"TELEGRAM_CHAT_ID"`

	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"30s"`

	RedisAddr     string `env:"REDIS_ADDR,required"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	LeadLanding     string `env:"LEAD_LANDING" envDefault:"lp-003sl"`
	LeadRedirectURL string `env:"LEAD_REDIRECT_URL" envDefault:"../lp-003sl/thankyou.html"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
