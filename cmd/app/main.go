package main

import (
	"flag"
	"log"
	"os"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/di"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s model_store=%s", cfg.Environment, cfg.Model.Store)

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
