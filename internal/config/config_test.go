// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Fetch.Concurrency != 5 {
		t.Errorf("expected concurrency 5, got %d", cfg.Fetch.Concurrency)
	}
	if cfg.Scoring.TitleWeight != 3 || cfg.Scoring.BodyWeight != 1 {
		t.Errorf("expected section weights 3/1, got %v/%v", cfg.Scoring.TitleWeight, cfg.Scoring.BodyWeight)
	}
	if cfg.Scoring.BaseLanguage != "en" {
		t.Errorf("expected base language en, got %s", cfg.Scoring.BaseLanguage)
	}
	if cfg.Scoring.Strict {
		t.Error("expected permissive scoring by default")
	}
}

func TestConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TAGDESK_HOME", tmpDir)

	if dir := Dir(); dir != tmpDir {
		t.Errorf("expected %s, got %s", tmpDir, dir)
	}
	if got := DBPath(); got != filepath.Join(tmpDir, "tagdesk.db") {
		t.Errorf("unexpected db path %s", got)
	}
}

func TestTranslationsPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TAGDESK_HOME", tmpDir)

	cfg := Default()
	if got := cfg.TranslationsPath(); got != filepath.Join(tmpDir, "translations.csv") {
		t.Errorf("expected relative path under home, got %s", got)
	}

	cfg.Translations.Path = "/srv/translations.csv"
	if got := cfg.TranslationsPath(); got != "/srv/translations.csv" {
		t.Errorf("expected absolute path kept, got %s", got)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TAGDESK_HOME", tmpDir)

	cfg := Default()
	cfg.Fetch.Concurrency = 10
	cfg.Scoring.Strict = true
	cfg.SetThreshold("computed", "politics", 4.5)
	cfg.SetThreshold("delta", "politics", -1)

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Fetch.Concurrency != 10 {
		t.Errorf("expected concurrency 10, got %d", loaded.Fetch.Concurrency)
	}
	if !loaded.Scoring.Strict {
		t.Error("expected strict scoring")
	}
	if got := loaded.Threshold("computed", "politics"); got != 4.5 {
		t.Errorf("expected computed politics threshold 4.5, got %v", got)
	}
	if got := loaded.Threshold("delta", "politics"); got != -1 {
		t.Errorf("expected delta politics threshold -1, got %v", got)
	}
	if got := loaded.Threshold("legacy", "politics"); got != 0 {
		t.Errorf("expected thresholds kept per source, got legacy %v", got)
	}
	if got := loaded.Threshold("auto", "sport"); got != 0 {
		t.Errorf("expected unset threshold 0, got %v", got)
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("TAGDESK_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Daemon.Schedule != Default().Daemon.Schedule {
		t.Errorf("expected default schedule, got %s", cfg.Daemon.Schedule)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TAGDESK_HOME", tmpDir)
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("scoring: [oops"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestSetThresholdOnEmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.SetThreshold("auto", "weather", 2)

	if got := cfg.Threshold("auto", "weather"); got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
	if got := cfg.Threshold("missing", "weather"); got != 0 {
		t.Errorf("expected 0 for unknown source, got %v", got)
	}
}
