// Package main provides the entry point for the cents-csv CLI application.
package main

import (
	"fmt"
	"os"
	"strings"

	"dizimo/cents-csv/cmd/classify"
	"dizimo/cents-csv/cmd/root"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently, then pin the global log level
	// before any logger is created.
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
	logrus.SetLevel(globalLogLevel())

	root.Init()
	root.Cmd.AddCommand(classify.Cmd)
}

func globalLogLevel() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
