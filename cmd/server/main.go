package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kidlearn/internal/config"
	"kidlearn/internal/content"
	"kidlearn/internal/database"
	"kidlearn/internal/handlers"
	"kidlearn/internal/quiz"
	"kidlearn/internal/repository"
	"kidlearn/internal/security"
	"kidlearn/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Initialize services
	catalog := content.Default()
	childTokens := security.NewChildTokenIssuer(cfg.SessionSecret, cfg.ChildSessionDuration)

	authService := service.NewAuthService(userRepo, childTokens, cfg.SessionDuration)
	directoryService := service.NewDirectoryService(userRepo)
	learningService := service.NewLearningService(catalog, progressRepo, activityRepo, userRepo)

	reportService, err := service.NewReportService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatalf("Failed to initialize report service: %v", err)
	}

	// Seed the default parent and children on a fresh database
	if err := directoryService.SeedDefaultAccounts(); err != nil {
		log.Printf("Warning: Failed to seed default accounts: %v", err)
	}

	generator := quiz.NewGenerator(catalog, rand.New(rand.NewSource(time.Now().UnixNano())))

	// Initialize handlers
	middleware := handlers.NewMiddleware(authService)
	mux := handlers.NewRouter(
		middleware,
		handlers.NewContentHandler(catalog),
		handlers.NewQuizHandler(generator),
		handlers.NewAuthHandler(authService, cfg.ChildSessionDuration),
		handlers.NewProgressHandler(learningService),
		handlers.NewParentHandler(directoryService, learningService, reportService),
	)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background session cleanup
	go cleanupExpiredSessions(authService)

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// cleanupExpiredSessions periodically removes expired parent sessions
func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
		} else {
			log.Println("Expired parent sessions cleaned up")
		}
	}
}
