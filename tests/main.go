package main

import (
	"log"
	"os"

	"github.com/bol3ezzz/spalux-backend/config"
	"github.com/bol3ezzz/spalux-backend/database"
	adminRepo "github.com/bol3ezzz/spalux-backend/database/repository/admin"
)

// Seeds the default admin account so the dashboard is reachable on a fresh
// database. Credentials come from ADMIN_USERNAME / ADMIN_EMAIL /
// ADMIN_PASSWORD, with development fallbacks.
func main() {
	config.LoadConfig()
	database.InitDB()

	username := envOr("ADMIN_USERNAME", "admin")
	email := envOr("ADMIN_EMAIL", "admin@spalux.local")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
		log.Println("ADMIN_PASSWORD not set, seeding with the default password; change it before going live")
	}

	repo := adminRepo.NewMongoAdminRepo()

	existing, err := repo.GetByLogin(username)
	if err != nil {
		log.Fatalf("Failed to look up admin %s: %v", username, err)
	}
	if existing != nil {
		log.Printf("Admin %s already exists, nothing to do", username)
		return
	}

	admin, err := adminRepo.NewAdmin(username, email, password)
	if err != nil {
		log.Fatalf("Failed to build admin account: %v", err)
	}
	if err := repo.Create(admin); err != nil {
		log.Fatalf("Failed to insert admin: %v", err)
	}
	log.Printf("Seeded admin %s (%s)", username, email)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
