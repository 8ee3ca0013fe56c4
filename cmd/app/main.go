package main

import (
	"flag"
	"log"
	"os"

	"github.com/dancaldera/investment-api/internal/di"
	"github.com/dancaldera/investment-api/pkg/config"

	"github.com/joho/godotenv"
)

func main() {
	// Load a local .env before config resolution; absence is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("dotenv: %v", err)
	}

	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s port=%d provider=%s", cfg.Environment, cfg.Server.Port, cfg.Provider.BaseURL)

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
