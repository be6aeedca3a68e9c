package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	Port        string

	// DBUrl selects the Postgres event store when set. Empty means the
	// in-memory store seeded with demo data.
	DBUrl string

	// TasksDBPath is the SQLite file backing the task list.
	TasksDBPath string

	JWTSecret string

	// EmailDomain is the domain appended to derived participant emails.
	EmailDomain string

	EmailProvider          string
	EmailFromAddress       string
	EmailFromName          string
	AWSRegion              string
	AWSAccessKeyID         string
	AWSSecretAccessKey     string
	EmailInsecureSkipTLS   bool
	CORSAllowedOrigins     []string
	DemoAdminPassword      string
	DemoStudentPassword    string
}

// Load loads configuration from environment variables. It attempts to load
// from a .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env might not exist and we rely on system environment
	// variables, so a load failure is only a warning.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:          env,
		Port:                 os.Getenv("PORT"),
		DBUrl:                os.Getenv("DATABASE_URL"),
		TasksDBPath:          os.Getenv("TASKS_DB_PATH"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		EmailDomain:          os.Getenv("EMAIL_DOMAIN"),
		EmailProvider:        os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress:     os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:        os.Getenv("EMAIL_FROM_NAME"),
		AWSRegion:            os.Getenv("AWS_REGION"),
		AWSAccessKeyID:       os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
		EmailInsecureSkipTLS: os.Getenv("EMAIL_INSECURE_SKIP_TLS_VERIFY") == "true",
		DemoAdminPassword:    os.Getenv("DEMO_ADMIN_PASSWORD"),
		DemoStudentPassword:  os.Getenv("DEMO_STUDENT_PASSWORD"),
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = splitAndTrim(origins)
	}

	// Defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.TasksDBPath == "" {
		cfg.TasksDBPath = "tasks.db"
	}
	if cfg.JWTSecret == "" {
		if env == "production" {
			log.Fatal("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-secret-do-not-use-in-production"
	}
	if cfg.EmailDomain == "" {
		cfg.EmailDomain = "university.edu"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}
	if cfg.DemoAdminPassword == "" {
		cfg.DemoAdminPassword = "admin123"
	}
	if cfg.DemoStudentPassword == "" {
		cfg.DemoStudentPassword = "student123"
	}

	return cfg, nil
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
