// Package config provides environment and file based configuration.
package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	// Logger is the global logger instance shared across the application.
	Logger = logrus.New()
)

// LoadEnv loads environment variables from a .env file if one exists in
// the current directory.
func LoadEnv() {
	once.Do(func() {
		if _, err := os.Stat(".env"); os.IsNotExist(err) {
			Logger.Debug("No .env file found, using environment variables")
			return
		}
		if err := godotenv.Load(".env"); err != nil {
			Logger.Warnf("Error loading .env file: %v", err)
			return
		}
		Logger.Info("Loaded environment variables from .env")
	})
}

// ConfigureLogging sets up the global logger from LOG_LEVEL and LOG_FORMAT
// environment variables and returns it.
func ConfigureLogging() *logrus.Logger {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		Logger.Warnf("Invalid log level '%s', using 'info'", logLevelStr)
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return Logger
}

// GetEnv retrieves an environment variable with a fallback value.
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
