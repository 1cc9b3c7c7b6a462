package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/prateek/brandpost-api/internal/config"
	"github.com/prateek/brandpost-api/internal/database"
	"github.com/prateek/brandpost-api/internal/models"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: promote-admin <email>")
		os.Exit(1)
	}

	email := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	result, err := db.Pool.Exec(ctx, `
		UPDATE admins SET role = $1, updated_at = NOW()
		WHERE email = $2
	`, models.RoleSuperAdmin, email)
	if err != nil {
		log.Fatalf("Failed to update admin: %v", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		log.Fatalf("No admin found with email: %s", email)
	}

	fmt.Printf("Successfully promoted %s to super admin\n", email)
}
