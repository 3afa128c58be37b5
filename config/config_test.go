package config_test

import (
	"testing"

	"master-data-barang/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port == 0 {
		t.Errorf("expected a default port")
	}
	if cfg.Upload.Dir != "/tmp/uploads" {
		t.Errorf("expected default upload dir /tmp/uploads, got %s", cfg.Upload.Dir)
	}
	if cfg.Upload.PublicPrefix != "/uploads" {
		t.Errorf("expected default public prefix /uploads, got %s", cfg.Upload.PublicPrefix)
	}
	if cfg.Mongo.Database == "" {
		t.Errorf("expected a default database name")
	}
	if cfg.RateLimit.RequestsPerMin <= 0 {
		t.Errorf("expected a positive default rate limit, got %d", cfg.RateLimit.RequestsPerMin)
	}
}

func TestEnvAliases(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "mongodb://example:27017")
	t.Setenv("DATABASE_NAME", "inventaris")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 9999 {
		t.Errorf("expected PORT to win, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Mongo.URI != "mongodb://example:27017" {
		t.Errorf("expected DATABASE_URL to win, got %s", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "inventaris" {
		t.Errorf("expected DATABASE_NAME to win, got %s", cfg.Mongo.Database)
	}
}
