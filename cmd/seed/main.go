package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-product-api/internal/core/config"
	"go-product-api/internal/core/database"
	"go-product-api/internal/core/logger"
	"go-product-api/internal/feature/user"
	"go-product-api/pkg/utils"
)

// Seeds the user table with two sample accounts, wiping it first.
func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.New(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	if err := db.AutoMigrate(&user.User{}); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	users := []user.User{
		{FirstName: "John", LastName: "Doe", Email: "user1@gmail.com", Password: utils.HashPassword("password")},
		{FirstName: "John", LastName: "Doe", Email: "user2@gmail.com", Password: utils.HashPassword("password")},
	}

	if err := user.NewRepo(db).Seed(context.Background(), users); err != nil {
		log.Fatal("users seeding failed", zap.Error(err))
	}
	log.Info("users seeding completed", zap.Int("count", len(users)))
}
