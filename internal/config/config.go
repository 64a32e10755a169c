// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

type StudioConfig struct {
	BusinessName string `yaml:"business_name"`
	Tagline      string `yaml:"tagline"`
	ContactEmail string `yaml:"contact_email"`
	ContactPhone string `yaml:"contact_phone"`
	Address      string `yaml:"address"`
	Instagram    string `yaml:"instagram,omitempty"`
	YouTube      string `yaml:"youtube,omitempty"`
}

type EmailConfig struct {
	Region    string `yaml:"region"`
	Sender    string `yaml:"sender"`
	Recipient string `yaml:"recipient"`
	// Credentials come from the environment, never the config file.
	AccessKeyID     string `yaml:"-"`
	SecretAccessKey string `yaml:"-"`
}

type BookingConfig struct {
	// SessionTTL is a Go duration string, e.g. "2h".
	SessionTTL      string `yaml:"session_ttl"`
	CleanupSchedule string `yaml:"cleanup_schedule"`
}

// TTL parses the configured session TTL. Empty means "use the default".
func (b BookingConfig) TTL() (time.Duration, error) {
	if b.SessionTTL == "" {
		return 0, nil
	}
	return time.ParseDuration(b.SessionTTL)
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseURL     string `yaml:"base_url"`
	} `yaml:"app"`

	Studio   StudioConfig   `yaml:"studio"`
	Email    EmailConfig    `yaml:"email"`
	Booking  BookingConfig  `yaml:"booking"`
	Database DatabaseConfig `yaml:"database"`

	Features struct {
		EnableMetrics bool `yaml:"enable_metrics"`
		EnableDebug   bool `yaml:"enable_debug"`
	} `yaml:"features"`

	// AdminPassphraseHash gates the blocked-dates admin endpoints.
	// Loaded from the environment as a bcrypt hash.
	AdminPassphraseHash string `yaml:"-"`
}

// Load loads both .env and yaml configuration.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Load sensitive values from environment
	cfg.Email.AccessKeyID = os.Getenv("SES_ACCESS_KEY_ID")
	cfg.Email.SecretAccessKey = os.Getenv("SES_SECRET_ACCESS_KEY")
	cfg.AdminPassphraseHash = os.Getenv("ADMIN_PASSPHRASE_HASH")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.Studio.BusinessName == "" {
		return fmt.Errorf("studio business name is required")
	}
	if c.Studio.ContactEmail == "" {
		return fmt.Errorf("studio contact email is required")
	}
	if c.Database.Driver != "sqlite" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename is required for sqlite")
	}
	if _, err := c.Booking.TTL(); err != nil {
		return fmt.Errorf("invalid booking session_ttl: %w", err)
	}
	return nil
}

// EmailEnabled reports whether the SES relay is fully configured. The
// site still serves pages without it; submissions then fail with the
// fallback contact instruction.
func (c *Config) EmailEnabled() bool {
	return c.Email.Region != "" &&
		c.Email.Sender != "" &&
		c.Email.Recipient != "" &&
		c.Email.AccessKeyID != "" &&
		c.Email.SecretAccessKey != ""
}
