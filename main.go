package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"banksheets/cmd/categorize"
	"banksheets/cmd/clean"
	"banksheets/cmd/preview"
	"banksheets/cmd/root"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently before any logging happens, then
	// pin the global log level so every logger created later inherits it.
	loadEnvSilently()
	logrus.SetLevel(configureLogLevel())

	root.Init()
	root.Cmd.AddCommand(clean.Cmd)
	root.Cmd.AddCommand(preview.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
}

func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func configureLogLevel() logrus.Level {
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
