package main

import (
	"flag"
	"log"
	"os"

	"b2bcatalog_api/config"
	"b2bcatalog_api/internal/catalog/app"
	"b2bcatalog_api/pkg/dbconnect/postgres"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to yaml config")
	flag.Parse()

	var cfg *config.AppConfig
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", *configPath, err)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultAppConfig()
	}

	connector := postgres.NewPgConnector(&cfg.Postgres)
	server := app.NewCatalogServer(connector, cfg, os.Stdout)

	log.Printf("\nStarted app\n")
	if err := server.Run(); err != nil {
		log.Fatalf("Catalog server stopped: %v", err)
	}
}
