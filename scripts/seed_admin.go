package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/roksva123/go-productivity-backend/internal/config"
	"github.com/roksva123/go-productivity-backend/internal/repository"
	"github.com/roksva123/go-productivity-backend/internal/service"
)

// Creates or resets the dashboard admin without starting the server.
// Usage: go run ./scripts [username] [password]
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed load config: ", err)
	}

	username, password := cfg.AdminUsername, cfg.AdminPassword
	if len(os.Args) > 1 {
		username = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, err := repository.NewPostgresRepo(ctx, cfg.DSN())
	if err != nil {
		log.Fatal("DB unreachable: ", err)
	}
	defer repo.Close()

	if err := repo.RunMigrations(ctx); err != nil {
		log.Fatal("Failed ensure tables: ", err)
	}

	if err := service.NewAuthService(repo, cfg.JWTSecret).SeedAdmin(ctx, username, password); err != nil {
		log.Fatal("Failed upsert admin: ", err)
	}

	fmt.Println("Admin saved successfully!")
	fmt.Println("Username:", username)
}
