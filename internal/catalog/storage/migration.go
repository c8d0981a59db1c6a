package storage

import (
	"database/sql"
	"fmt"
	"log"
)

type MigrationsSchema struct{}

func (m *MigrationsSchema) UpMigration(db *sql.DB) error {
	query := `
		CREATE SCHEMA IF NOT EXISTS migrations;
		CREATE TABLE IF NOT EXISTS migrations.migrations (
		name VARCHAR(255) PRIMARY KEY,
		time TIMESTAMP
		);
		`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations registry: %w", err)
	}
	return nil
}

type CatalogProducts struct{}

func (m *CatalogProducts) UpMigration(db *sql.DB) error {
	var migrationExists bool
	err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM migrations.migrations WHERE name = 'catalog.products')").Scan(&migrationExists)
	if err != nil {
		return fmt.Errorf("failed to check migration status: %w", err)
	}
	if migrationExists {
		log.Println("Migration 'catalog.products' already completed. Skipping.")
		return nil
	}
	query :=
		`
		CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		product_code VARCHAR(255),
		article VARCHAR(255),
		title TEXT,
		category VARCHAR(255),
		category_name TEXT,
		brand VARCHAR(255),
		stock INT NOT NULL DEFAULT 0,
		price_uah NUMERIC(14, 2) NOT NULL DEFAULT 0,
		price_usd NUMERIC(14, 2) NOT NULL DEFAULT 0,
		image TEXT
		);
		`
	_, err = db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	_, err = db.Exec("INSERT INTO migrations.migrations (name, time) VALUES ('catalog.products', current_timestamp)")
	if err != nil {
		return fmt.Errorf("failed to mark catalog.products migration as complete: %w", err)
	}

	log.Println("Migration 'catalog.products' completed successfully.")
	return nil
}
