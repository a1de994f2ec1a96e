package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/khoahotran/profile-studio/adapters/persistence"
	"github.com/khoahotran/profile-studio/internal/config"
	"github.com/khoahotran/profile-studio/internal/domain/user"
	"github.com/khoahotran/profile-studio/pkg/auth"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

func main() {
	fmt.Println("adding owner into database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	appLogger := logger.NewZapLogger(cfg.App.Env)

	ownerEmail := os.Getenv("OWNER_EMAIL")
	ownerPassword := os.Getenv("OWNER_PASSWORD")
	if ownerEmail == "" || ownerPassword == "" {
		log.Fatal("OWNER_EMAIL and OWNER_PASSWORD must be set")
	}

	hash, err := auth.HashPassword(ownerPassword)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	owner := &user.User{ID: uuid.New(), Email: ownerEmail, PasswordHash: hash}
	if name := os.Getenv("OWNER_NAME"); name != "" {
		owner.Name = &name
	}

	if err := persistence.NewPostgresUserRepo(pool, appLogger).Upsert(context.Background(), owner); err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	fmt.Printf("added or updated owner '%s' successfully!\n", ownerEmail)
}
