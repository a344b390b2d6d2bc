package main

import (
	"log"
	"net/http"
	"os"

	_ "devforum/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"devforum/internal/auth"
	"devforum/internal/cache"
	"devforum/internal/config"
	"devforum/internal/db"
	"devforum/internal/handler"
	"devforum/internal/model"
	"devforum/internal/repository"
	"devforum/internal/router"
	"devforum/internal/service"
)

// @title Developer Forum API
// @version 1.0
// @description Question-and-answer forum API with tagged questions, answers, voting and token authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token issued at registration.
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
			&model.Answer{},
			&model.Question{},
			&model.Tag{},
			&model.AuthToken{},
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
		&model.User{},
		&model.AuthToken{},
		&model.Tag{},
		&model.Question{},
		&model.Answer{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)
	tagRepo := repository.NewTagRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)
	answerRepo := repository.NewAnswerRepository(gormDB)

	// Initialize auth components
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenRepo, tokenStore)
	questionService := service.NewQuestionService(questionRepo, answerRepo, tagRepo, cacheClient)
	answerService := service.NewAnswerService(answerRepo, questionRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	questionHandler := handler.NewQuestionHandler(questionService)
	answerHandler := handler.NewAnswerHandler(answerService)

	// Register routes
	router.Register(
		e,
		authService,
		authHandler,
		questionHandler,
		answerHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
