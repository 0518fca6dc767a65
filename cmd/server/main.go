package main

import (
	"fmt"
	"os"

	"contactform/internal/api"
	"contactform/internal/config"
	"contactform/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "./logs/api.log"
	}

	logging.Configure(&logging.Config{
		Level:      cfg.LogLevel,
		File:       logFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	})
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting send-email endpoint in %s mode on port %s", cfg.Environment, cfg.Port)

	srv := api.NewServer()
	if err := srv.Start(cfg.Port); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
