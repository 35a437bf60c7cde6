// Package config loads server settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/elsafrica/billing/internal/calculator"
)

// localJWTSecret signs tokens when APP_ENV=local and no secret is set.
const localJWTSecret = "local-development-secret"

type Config struct {
	AppEnv       string
	Addr         string
	DBPath       string
	JWTSecret    string
	JWTTTL       time.Duration
	Thresholds   calculator.Thresholds
	BatchWorkers int
	CompanyName  string
	Currency     string

	// Password reset mail. Links are ResetURL followed by the token; with
	// no SendGridAPIKey they are written to the log.
	SendGridAPIKey string
	MailFrom       string
	ResetURL       string
	ResetTTL       time.Duration
}

// Load reads .env from the working directory if present, then the process
// environment. Variables already set in the environment win over .env.
func Load() (Config, error) {
	return LoadFiles()
}

// LoadFiles is Load with explicit .env paths. Missing files are ignored.
func LoadFiles(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", f, err)
		}
	}

	var problems []string
	intVar := func(key string, fallback int) int {
		value := os.Getenv(key)
		if value == "" {
			return fallback
		}
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 {
			problems = append(problems, fmt.Sprintf("%s must be a positive integer, got %q", key, value))
			return fallback
		}
		return parsed
	}

	cfg := Config{
		AppEnv:    getEnv("APP_ENV", "local"),
		Addr:      getEnv("APP_ADDR", ":8080"),
		DBPath:    getEnv("DB_PATH", "./data/billing.db"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    time.Duration(intVar("JWT_TTL_HOURS", 24)) * time.Hour,
		Thresholds: calculator.Thresholds{
			DueAfterDays:     intVar("DUE_AFTER_DAYS", calculator.DefaultDueAfterDays),
			OverdueAfterDays: intVar("OVERDUE_AFTER_DAYS", calculator.DefaultOverdueAfterDays),
		},
		BatchWorkers: intVar("BATCH_WORKERS", 8),
		CompanyName:  getEnv("COMPANY_NAME", "Elsafrica Networks"),
		Currency:     getEnv("CURRENCY", "Ksh"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailFrom:       getEnv("MAIL_FROM", "Elsafrica Networks <billing@elsafrica.net>"),
		ResetURL:       getEnv("RESET_URL", "http://localhost:3000/auth/new_password/"),
		ResetTTL:       time.Duration(intVar("RESET_TTL_MINUTES", 60)) * time.Minute,
	}

	if cfg.JWTSecret == "" {
		if cfg.AppEnv == "local" {
			cfg.JWTSecret = localJWTSecret
		} else {
			problems = append(problems, "missing env: JWT_SECRET")
		}
	}
	if cfg.Thresholds.OverdueAfterDays < cfg.Thresholds.DueAfterDays {
		problems = append(problems, fmt.Sprintf("OVERDUE_AFTER_DAYS (%d) must not be less than DUE_AFTER_DAYS (%d)",
			cfg.Thresholds.OverdueAfterDays, cfg.Thresholds.DueAfterDays))
	}

	if len(problems) > 0 {
		return cfg, errors.New("invalid config: " + strings.Join(problems, "; "))
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
