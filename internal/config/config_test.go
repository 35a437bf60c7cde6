package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var keys = []string{
	"APP_ENV", "APP_ADDR", "DB_PATH", "JWT_SECRET", "JWT_TTL_HOURS",
	"DUE_AFTER_DAYS", "OVERDUE_AFTER_DAYS", "BATCH_WORKERS", "COMPANY_NAME", "CURRENCY",
	"SENDGRID_API_KEY", "MAIL_FROM", "RESET_URL", "RESET_TTL_MINUTES",
}

// clearEnv blanks every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFiles failed: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.DBPath != "./data/billing.db" || cfg.Currency != "Ksh" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Thresholds.DueAfterDays != 30 || cfg.Thresholds.OverdueAfterDays != 35 {
		t.Errorf("thresholds = %+v, want 30/35", cfg.Thresholds)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Errorf("JWTTTL = %v, want 24h", cfg.JWTTTL)
	}
	if cfg.JWTSecret == "" {
		t.Error("local env should get a development secret")
	}
	if cfg.SendGridAPIKey != "" || cfg.ResetTTL != time.Hour {
		t.Errorf("mail defaults = %q/%v, want no key and 1h", cfg.SendGridAPIKey, cfg.ResetTTL)
	}
	if !strings.HasSuffix(cfg.ResetURL, "/") {
		t.Errorf("ResetURL = %q, want a trailing slash", cfg.ResetURL)
	}
}

func TestLoad_Mail(t *testing.T) {
	clearEnv(t)
	t.Setenv("SENDGRID_API_KEY", "sg-key")
	t.Setenv("MAIL_FROM", "Billing <noreply@example.com>")
	t.Setenv("RESET_URL", "https://billing.example/reset/")
	t.Setenv("RESET_TTL_MINUTES", "15")

	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFiles failed: %v", err)
	}
	if cfg.SendGridAPIKey != "sg-key" || cfg.MailFrom != "Billing <noreply@example.com>" {
		t.Errorf("mail = %q/%q", cfg.SendGridAPIKey, cfg.MailFrom)
	}
	if cfg.ResetURL != "https://billing.example/reset/" || cfg.ResetTTL != 15*time.Minute {
		t.Errorf("reset = %q/%v", cfg.ResetURL, cfg.ResetTTL)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_ENV=production\nJWT_SECRET=from-file\nDUE_AFTER_DAYS=7\nOVERDUE_AFTER_DAYS=14\nBATCH_WORKERS=2\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv("BATCH_WORKERS", "4")

	cfg, err := LoadFiles(path)
	if err != nil {
		t.Fatalf("LoadFiles failed: %v", err)
	}
	if cfg.JWTSecret != "from-file" {
		t.Errorf("JWTSecret = %q, want from-file", cfg.JWTSecret)
	}
	if cfg.Thresholds.DueAfterDays != 7 || cfg.Thresholds.OverdueAfterDays != 14 {
		t.Errorf("thresholds = %+v, want 7/14", cfg.Thresholds)
	}
	if cfg.BatchWorkers != 4 {
		t.Errorf("BatchWorkers = %d, want the environment value 4", cfg.BatchWorkers)
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("DUE_AFTER_DAYS", "40")
	t.Setenv("BATCH_WORKERS", "many")

	_, err := LoadFiles(filepath.Join(t.TempDir(), "missing.env"))
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"JWT_SECRET", "OVERDUE_AFTER_DAYS", "BATCH_WORKERS"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
