package config_test

import (
	"testing"

	"github.com/ricewise/ricewise/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("testdata/nonexistent.env")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
	if cfg.MongoDB.URI != "mongodb://localhost:27017" || cfg.MongoDB.DBName != "ricewise" {
		t.Fatalf("mongo = %+v", cfg.MongoDB)
	}
	if cfg.Reporting.CronSchedule != "0 20 * * 5" {
		t.Fatalf("cron = %q", cfg.Reporting.CronSchedule)
	}
	if cfg.Sheets.Enabled() {
		t.Fatal("sheets should be disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MONGODB_DB_NAME", "ricewise_test")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != "9090" || cfg.MongoDB.DBName != "ricewise_test" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestValidateRejectsPartialSheetsConfig(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/tmp/creds.json")
	t.Setenv("GOOGLE_SHEET_DATABASE_ID", "")

	if _, err := config.Load(""); err == nil {
		t.Fatal("expected validation error for partial sheets config")
	}
}
