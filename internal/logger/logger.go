package logger

import (
	"strings"

	"github.com/Dan9191/bank-account/internal/config"
	"github.com/sirupsen/logrus"
)

// New creates a logrus logger from configuration.
// An unknown level falls back to info.
func New(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	if strings.EqualFold(cfg.LogFormat, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}
