package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/tinybigcorp/backend/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	seeds := []struct {
		email    string
		username string
		fullName string
	}{
		{"alice@tinybigcorp.example", "alice", "Alice Anderson"},
		{"bob@tinybigcorp.example", "bob", "Bob Brown"},
		{"carol@tinybigcorp.example", "carol", "Carol Clark"},
	}

	for _, s := range seeds {
		var id int64
		err := db.QueryRow(`
			INSERT INTO users (email, username, full_name)
			VALUES ($1, $2, $3)
			ON CONFLICT (email) DO UPDATE SET full_name = EXCLUDED.full_name, updated_at = now()
			RETURNING id
		`, s.email, s.username, s.fullName).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", s.username, err)
		}
		fmt.Printf("seeded user: id=%d email=%s username=%s\n", id, s.email, s.username)
	}
}
