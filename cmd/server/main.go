package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	_ "quizapi/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"quizapi/internal/cache"
	"quizapi/internal/config"
	"quizapi/internal/db"
	"quizapi/internal/handler"
	"quizapi/internal/model"
	"quizapi/internal/repository"
	"quizapi/internal/router"
	"quizapi/internal/service"
)

// @title Quiz Content API
// @version 1.0
// @description Quiz questions grouped by category, plus user account management. Question answers are returned obfuscated (base64 of id+answer) for display hiding only.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Question{},
			&model.Category{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.Question{},
		&model.User{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize services
	quizService := service.NewQuizService(categoryRepo, questionRepo, cacheClient)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(quizService)
	userHandler := handler.NewUserHandler(userService)
	seedHandler := handler.NewSeedHandler(categoryRepo, questionRepo, userRepo, cacheClient)

	// Register routes
	router.Register(e, cfg, quizHandler, userHandler, seedHandler)

	log.Printf("Swagger documentation available at: %s", swaggerURL(cfg.SwaggerHost, cfg.ServerPort))

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// swaggerURL builds the docs link from SWAGGER_HOST when set (with or
// without a scheme), falling back to localhost on the listen port.
func swaggerURL(swaggerHost, port string) string {
	host := "http://localhost:" + port
	if swaggerHost != "" {
		host = swaggerHost
		if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
			host = "http://" + host
		}
	}
	return host + "/swagger/index.html"
}
