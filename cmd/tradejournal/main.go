package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/akshay543210/trade-paste-analytics/internal/cli"
	"github.com/akshay543210/trade-paste-analytics/internal/config"
	"github.com/akshay543210/trade-paste-analytics/internal/logging"
)

func main() {
	_ = godotenv.Load()

	configDir := ""
	for i, arg := range os.Args {
		if arg == "--config" && i+1 < len(os.Args) {
			configDir = os.Args[i+1]
		}
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger()

	rootCmd := cli.NewRootCmd(cfg, logger)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
