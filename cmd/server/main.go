// Campus Event Hub API server.
//
// @title Campus Event Hub API
// @version 1.0
// @description Event, registration and task management for campus clubs.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"campuseventhub/config"
	_ "campuseventhub/docs"
	authadapter "campuseventhub/internal/adapters/auth"
	"campuseventhub/internal/adapters/email"
	"campuseventhub/internal/adapters/notify"
	deliveryhttp "campuseventhub/internal/delivery/http"
	"campuseventhub/internal/delivery/http/controllers"
	"campuseventhub/internal/delivery/http/middleware"
	"campuseventhub/internal/domain"
	"campuseventhub/internal/repository/memory"
	"campuseventhub/internal/repository/postgres"
	"campuseventhub/internal/repository/sqlite"
	"campuseventhub/internal/services"
)

const tokenExpiry = 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	// Event and participant storage: Postgres when DATABASE_URL is set,
	// otherwise the in-memory store seeded with demo data.
	var (
		eventRepo       domain.EventRepository
		participantRepo domain.ParticipantRepository
		userRepo        domain.UserRepository
	)
	memStore := memory.NewStore()
	userRepo = memory.NewUserRepository(memStore)
	if cfg.DBUrl != "" {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("ping database", "err", err)
			os.Exit(1)
		}
		if err := postgres.Migrate(db); err != nil {
			logger.Error("migrate database", "err", err)
			os.Exit(1)
		}
		eventRepo = postgres.NewEventRepository(db)
		participantRepo = postgres.NewParticipantRepository(db)
		logger.Info("using postgres event store")
	} else {
		memStore.Seed()
		eventRepo = memory.NewEventRepository(memStore)
		participantRepo = memory.NewParticipantRepository(memStore)
		logger.Info("using in-memory event store with demo data")
	}

	// Task storage is always the embedded SQLite file.
	taskRepo, taskDB, err := sqlite.Open(cfg.TasksDBPath)
	if err != nil {
		logger.Error("open task store", "err", err)
		os.Exit(1)
	}
	defer taskDB.Close()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.EmailInsecureSkipTLS,
		},
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}

	notifier := notify.NewSlogNotifier(logger)
	hasher := authadapter.NewBcryptHasher(bcrypt.DefaultCost)
	issuer, verifier := authadapter.NewJWTTokens(cfg.JWTSecret)

	emailService := services.NewEmailService(mailer)
	eventService := services.NewEventService(eventRepo, participantRepo, notifier)
	participantService := services.NewParticipantService(eventRepo, participantRepo, notifier, emailService, cfg.EmailDomain)
	taskService := services.NewTaskService(taskRepo, notifier)
	authService := services.NewAuthService(userRepo, hasher, issuer, tokenExpiry)

	seedDemoUsers(logger, authService, cfg)

	eventController := controllers.NewEventController(logger, eventService)
	participantController := controllers.NewParticipantController(logger, participantService, eventService)
	taskController := controllers.NewTaskController(logger, taskService)
	authController := controllers.NewAuthController(logger, authService)

	mux := deliveryhttp.NewRouter(verifier, eventController, participantController, taskController, authController)

	var handler http.Handler = mux
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	}
	handler = middleware.LoggingMiddleware(logger, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}

// seedDemoUsers creates the two demo accounts. Duplicate-create errors on a
// reused user store are ignored.
func seedDemoUsers(logger *slog.Logger, auth domain.AuthService, cfg *config.Config) {
	ctx := context.Background()
	demos := []struct {
		email    string
		name     string
		role     domain.Role
		password string
	}{
		{"admin@" + cfg.EmailDomain, "Admin", domain.RoleAdmin, cfg.DemoAdminPassword},
		{"student@" + cfg.EmailDomain, "Student", domain.RoleStudent, cfg.DemoStudentPassword},
	}
	for _, d := range demos {
		if _, err := auth.CreateUser(ctx, d.email, d.name, d.role, d.password); err != nil && !errors.Is(err, domain.ErrInvalidInput) {
			logger.Warn("seed demo user", "email", d.email, "err", err)
		}
	}
}
