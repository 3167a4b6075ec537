package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yashkumarverma/cronphrase/src/cronphrase"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Language != "en" || cfg.DayNameFormat != "short" {
		t.Errorf("defaults = %q/%q", cfg.Language, cfg.DayNameFormat)
	}
	if cfg.CacheURLScheme != "redis" || cfg.CacheAddr() != "localhost:6379" || cfg.CacheTTL != 24*time.Hour {
		t.Errorf("cache defaults = %s %s %v", cfg.CacheURLScheme, cfg.CacheAddr(), cfg.CacheTTL)
	}
	loc, err := cfg.Location()
	if err != nil || loc != nil {
		t.Errorf("Location() = %v, %v", loc, err)
	}
}

func TestParseConfigFromEnv(t *testing.T) {
	t.Setenv("CRON_LANGUAGE", "es")
	t.Setenv("CRON_DAY_NAME_FORMAT", "custom")
	t.Setenv("CRON_CUSTOM_DAY_MAPPINGS", "0:Do,1:Lu,2:Ma,3:Mi,4:Ju,5:Vi,6:Sa,7:Do")
	t.Setenv("CRON_TIME_ZONE", "UTC")
	t.Setenv("CACHE_URL_SCHEME", "valkey")
	t.Setenv("CACHE_TTL", "90m")

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.CacheURLScheme != "valkey" || cfg.CacheTTL != 90*time.Minute {
		t.Errorf("cache = %s %v", cfg.CacheURLScheme, cfg.CacheTTL)
	}

	settings, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	got, err := cronphrase.ToHumanReadable("0 9 * * 1,3", settings, nil)
	if err != nil {
		t.Fatalf("ToHumanReadable() error = %v", err)
	}
	if want := "Cada Lu y Mi a las 09:00 AM"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("Location() = %v, %v", loc, err)
	}
}

func TestLocationUnknownZone(t *testing.T) {
	cfg := &Config{TimeZone: "Nowhere/Special"}
	if _, err := cfg.Location(); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadSettingsFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "settings.yaml")
	content := "language: fr\ndayNameFormat: full\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := &Config{SettingsFile: path, Language: "en"}
	s, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if s.Language != "fr" || s.DayNameFormat != cronphrase.FormatFull {
		t.Errorf("Settings() = %+v", s)
	}

	partial := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(partial, []byte("dayNameFormat: custom\ncustomDayMappings:\n  \"0\": Su\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err = LoadSettingsFile(partial)
	if err != nil {
		t.Fatalf("LoadSettingsFile() error = %v", err)
	}
	if s.Language != "en" {
		t.Errorf("Language = %q, want default en", s.Language)
	}
	if err := s.Validate(); !errors.Is(err, cronphrase.ErrInvalidSettings) {
		t.Errorf("Validate() = %v, want ErrInvalidSettings", err)
	}

	if _, err := LoadSettingsFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
