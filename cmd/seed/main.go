package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/VinaySonwane/note-App/config"
)

// Seeds a demo user with a couple of notes for local development. The demo
// user has no pending OTP; request one via resend-otp to sign in.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@noteapp.local"
	name := "Demo User"

	var id string
	err = db.QueryRow(`
		INSERT INTO users (name, email, dob)
		VALUES ($1, $2, '2000-01-01')
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s name=%s\n", id, email, name)

	for _, content := range []string{
		"Welcome to Note App!",
		"Notes are private: only you can see and delete them.",
	} {
		if _, err := db.Exec(`
			INSERT INTO notes (user_id, content)
			VALUES ($1, $2)
		`, id, content); err != nil {
			log.Fatalf("failed to seed note: %v", err)
		}
	}
	fmt.Println("seeded demo notes")
}
