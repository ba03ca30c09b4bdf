package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"hvacops/internal/app/server"
	"hvacops/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	app := server.New(cfg)

	log.Printf("%s admin server listening on %s", cfg.CompanyName, cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
