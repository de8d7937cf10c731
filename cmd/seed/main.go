package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/zonecast/zonecast/config"
	"github.com/zonecast/zonecast/pkg/helpers"
)

// Seeds a demo account with a couple of zones for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demo"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id
	`, username, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d username=%s password=%s\n", userID, username, password)

	zones := []struct {
		name     string
		country  string
		lat, lon float64
	}{
		{"Paris", "FR", 48.8566, 2.3522},
		{"Berlin", "DE", 52.52, 13.405},
	}
	for _, z := range zones {
		if _, err := db.Exec(`
			INSERT INTO zones (user_id, name, country_code, latitude, longitude)
			VALUES ($1, $2, $3, $4, $5)
		`, userID, z.name, z.country, z.lat, z.lon); err != nil {
			log.Fatalf("failed to seed zone %s: %v", z.name, err)
		}
		fmt.Printf("seeded zone: %s (%.4f, %.4f)\n", z.name, z.lat, z.lon)
	}
}
