package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Scoring      ScoringConfig      `yaml:"scoring"`
	Translations TranslationsConfig `yaml:"translations"`
	Fetch        FetchConfig        `yaml:"fetch"`
	Daemon       DaemonConfig       `yaml:"daemon"`
	// Thresholds holds, per display source (auto, legacy, computed, delta), the
	// minimum score per category key for an article to be listed.
	Thresholds map[string]map[string]float64 `yaml:"thresholds,omitempty"`
}

type ScoringConfig struct {
	BaseLanguage string  `yaml:"base_language"`
	TitleWeight  float64 `yaml:"title_weight"`
	BodyWeight   float64 `yaml:"body_weight"`
	// Strict turns NaN results into 0.
	Strict  bool `yaml:"strict"`
	Workers int  `yaml:"workers"`
}

type TranslationsConfig struct {
	// Path to the translation CSV. Relative paths are resolved against Dir().
	Path string `yaml:"path"`
}

type FetchConfig struct {
	Concurrency    int    `yaml:"concurrency"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
	// FullContent downloads each item's page and extracts the article text
	// when the feed only carries a summary.
	FullContent bool `yaml:"full_content"`
}

type DaemonConfig struct {
	// Schedule is a standard five-field cron expression.
	Schedule string `yaml:"schedule"`
	Timezone string `yaml:"timezone"`
}

func Default() *Config {
	return &Config{
		Scoring: ScoringConfig{
			BaseLanguage: "en",
			TitleWeight:  3,
			BodyWeight:   1,
			Workers:      0,
		},
		Translations: TranslationsConfig{
			Path: "translations.csv",
		},
		Fetch: FetchConfig{
			Concurrency:    5,
			TimeoutSeconds: 30,
			UserAgent:      "tagdesk/1.0",
		},
		Daemon: DaemonConfig{
			Schedule: "0 */6 * * *",
			Timezone: "UTC",
		},
		Thresholds: map[string]map[string]float64{
			"auto":     {},
			"legacy":   {},
			"computed": {},
			"delta":    {},
		},
	}
}

func Dir() string {
	if dir := os.Getenv("TAGDESK_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tagdesk")
}

func DBPath() string {
	return filepath.Join(Dir(), "tagdesk.db")
}

func configPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// TranslationsPath resolves the configured translation table location.
func (c *Config) TranslationsPath() string {
	if c.Translations.Path == "" || filepath.IsAbs(c.Translations.Path) {
		return c.Translations.Path
	}
	return filepath.Join(Dir(), c.Translations.Path)
}

// Threshold returns the minimum score of a category under a display source,
// 0 when unset.
func (c *Config) Threshold(source, key string) float64 {
	return c.Thresholds[source][key]
}

// SetThreshold records a minimum score, creating the source map when needed.
func (c *Config) SetThreshold(source, key string, v float64) {
	if c.Thresholds == nil {
		c.Thresholds = make(map[string]map[string]float64)
	}
	if c.Thresholds[source] == nil {
		c.Thresholds[source] = make(map[string]float64)
	}
	c.Thresholds[source][key] = v
}

func Load() (*Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0644)
}
