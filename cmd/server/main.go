package main

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/middleware"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/api/routes"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/config"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/faqs"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/messages"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/moderation"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/notifications"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/stats"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/users"
	postgresRepo "github.com/SochesdaThoeun/mindspeak-sys/internal/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to admin database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, "internal/db/migrations"); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	// Repositories
	contentRepo := postgresRepo.NewContentRepository(db)
	messageRepo := postgresRepo.NewMessageRepository(db)
	faqRepo := postgresRepo.NewFAQRepository(db)
	userRepo := postgresRepo.NewUserRepository(db)
	statsRepo := postgresRepo.NewStatsRepository(db)
	notificationRepo := postgresRepo.NewNotificationRepository(db)

	// Services
	mailer := notifications.NewLogMailer(logger)
	dispatcher := notifications.NewDispatcher(notificationRepo, mailer, cfg.AppBaseURL, logger)
	moderationService := moderation.NewService(contentRepo, dispatcher, logger)
	messageService := messages.NewService(messageRepo, logger)
	faqService := faqs.NewService(faqRepo, logger)
	userService := users.NewService(userRepo, logger)
	statsService := stats.NewService(statsRepo, logger)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	auth := middleware.NewSessionAuthMiddleware(cfg.SessionSecret)

	// Rate limiting: 100 requests per minute per admin. Registered inside
	// each route group after RequireAdmin, so the key is the authenticated
	// identity rather than a shared proxy IP.
	rateLimiter := middleware.NewRateLimiter(100, 1*time.Minute)

	routes.RegisterApprovalRoutes(r, moderationService, auth, rateLimiter)
	routes.RegisterMessageRoutes(r, messageService, auth, rateLimiter)
	routes.RegisterFAQRoutes(r, faqService, auth, rateLimiter)
	routes.RegisterUserRoutes(r, userService, auth, rateLimiter)
	routes.RegisterDashboardRoutes(r, statsService, auth, rateLimiter)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("Admin server starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
