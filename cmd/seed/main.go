package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/storeward/storefront-api/config"
	"github.com/storeward/storefront-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	userID := "demoUser"
	password := "password123"
	digest, err := helpers.HashPassword(password, cfg.PasswordPepper, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO users (id, first_name, last_name, password_digest)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET password_digest = EXCLUDED.password_digest
	`, userID, "Demo", "User", digest); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s password=%s\n", userID, password)

	categories := []string{"Books", "Games", "Groceries"}
	categoryIDs := make(map[string]int64, len(categories))
	for _, name := range categories {
		var id int64
		if err := db.QueryRow(`
			INSERT INTO categories (name) VALUES ($1) RETURNING id
		`, name).Scan(&id); err != nil {
			log.Fatalf("failed to seed category %s: %v", name, err)
		}
		categoryIDs[name] = id
	}
	fmt.Printf("seeded %d categories\n", len(categories))

	products := []struct {
		name     string
		price    string
		category string
	}{
		{"The Go Programming Language", "39.99", "Books"},
		{"Chess Set", "24.50", "Games"},
		{"Coffee Beans 1kg", "12.80", "Groceries"},
		{"Deck of Cards", "3.99", "Games"},
	}
	for _, p := range products {
		if _, err := db.Exec(`
			INSERT INTO products (name, price, category_id) VALUES ($1, $2, $3)
		`, p.name, p.price, categoryIDs[p.category]); err != nil {
			log.Fatalf("failed to seed product %s: %v", p.name, err)
		}
	}
	fmt.Printf("seeded %d products\n", len(products))
}
