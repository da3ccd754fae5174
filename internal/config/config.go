package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Dan9191/bank-account/internal/validate"
)

// Values accepted by NOTIFIER
const (
	// NotifierLog reports operations through the logger
	NotifierLog = "log"
	// NotifierEmail mails operations to the account holder over SMTP
	NotifierEmail = "email"
)

// Config holds application configuration
type Config struct {
	LogLevel       string
	LogFormat      string
	Notifier       string
	CurrencySymbol string
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SenderEmail    string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		Notifier:       strings.ToLower(getEnv("NOTIFIER", NotifierLog)),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "$"),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", ""),
	}

	switch cfg.Notifier {
	case NotifierLog:
	case NotifierEmail:
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("SMTP_HOST is required for the email notifier")
		}
		if !validate.IsValid(cfg.SenderEmail) {
			return nil, fmt.Errorf("SENDER_EMAIL %q is not a valid address", cfg.SenderEmail)
		}
	default:
		return nil, fmt.Errorf("NOTIFIER must be %q or %q, got %q", NotifierLog, NotifierEmail, cfg.Notifier)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
