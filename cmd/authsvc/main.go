package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/aryan1752/GovBridge-AI/internal/app"
	"github.com/aryan1752/GovBridge-AI/internal/config"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
