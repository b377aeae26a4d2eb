package main

import (
	"context"
	"log"

	"quizapi/internal/cache"
	"quizapi/internal/config"
	"quizapi/internal/db"
	"quizapi/internal/model"
	"quizapi/internal/repository"
	"quizapi/internal/seed"
	"quizapi/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.Question{},
		&model.User{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	categoryRepo := repository.NewCategoryRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	ctx := context.Background()
	log.Println("Seeding demo dataset...")
	result, err := seed.Apply(ctx, categoryRepo, questionRepo, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	// A running server may hold the category list and question counts in
	// Redis; drop them so the seeded rows are visible immediately.
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	keys := []string{service.CategoriesCacheKey}
	for _, category := range seed.Categories() {
		keys = append(keys, service.CountCacheKey(category))
	}
	_ = cacheClient.Delete(ctx, keys...)
	log.Println("Invalidated cached quiz metadata")

	log.Printf("Seed completed successfully!")
	log.Printf("  - Categories created: %d", result.Categories)
	log.Printf("  - Questions created: %d", result.Questions)
	log.Printf("  - Users created: %d", result.Users)
}
