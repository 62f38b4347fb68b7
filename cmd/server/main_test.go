package main

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "HTTP_PORT", "REPO_TYPE", "DB_PATH", "REDIS_ADDR", "REDIS_PREFIX",
		"CATALOG_PATH", "WORKSPACE_TTL", "TLS_CERT", "TLS_KEY", "TLS_CA", "LOG_LEVEL", "LOCALE", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}

	c := loadConfig()
	if c.Port != "50051" || c.HTTPPort != "8080" || c.RepoType != "memory" {
		t.Errorf("unexpected defaults %+v", c)
	}
	if c.WorkspaceTTL != 30*time.Minute || c.JanitorInterval != time.Minute {
		t.Errorf("unexpected durations %v / %v", c.WorkspaceTTL, c.JanitorInterval)
	}
	if c.LogLevel != zerolog.InfoLevel || c.Locale != "en" || c.RedisPrefix != "lux:" {
		t.Errorf("unexpected defaults %+v", c)
	}
	if len(c.AllowOrigins) != 0 {
		t.Errorf("expected no origins, got %v", c.AllowOrigins)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("REPO_TYPE", "redis")
	t.Setenv("WORKSPACE_TTL", "40s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	c := loadConfig()
	if c.RepoType != "redis" {
		t.Errorf("expected redis, got %q", c.RepoType)
	}
	if c.WorkspaceTTL != 40*time.Second || c.JanitorInterval != 20*time.Second {
		t.Errorf("unexpected durations %v / %v", c.WorkspaceTTL, c.JanitorInterval)
	}
	if c.LogLevel != zerolog.DebugLevel {
		t.Errorf("expected debug level, got %v", c.LogLevel)
	}
	if len(c.AllowOrigins) != 2 || c.AllowOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins %v", c.AllowOrigins)
	}
}

func TestLoadConfig_BadTTLKeepsDefault(t *testing.T) {
	t.Setenv("WORKSPACE_TTL", "soon")

	if c := loadConfig(); c.WorkspaceTTL != 30*time.Minute {
		t.Errorf("expected default TTL, got %v", c.WorkspaceTTL)
	}
}

func TestLoadConfig_TinyTTLFloorsJanitor(t *testing.T) {
	for _, ttl := range []string{"1ns", "3ns", "1500ms"} {
		t.Run(ttl, func(t *testing.T) {
			t.Setenv("WORKSPACE_TTL", ttl)

			c := loadConfig()
			if c.JanitorInterval != minJanitorInterval {
				t.Errorf("janitor interval = %v, want %v", c.JanitorInterval, minJanitorInterval)
			}
		})
	}
}
