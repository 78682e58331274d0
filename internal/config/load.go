package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults. Every key gets one, even if empty, so environment
	// overrides are picked up during Unmarshal.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.token_secret", "")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("source.kind", "")
	v.SetDefault("source.spreadsheet_id", "")
	v.SetDefault("source.read_range", "")
	v.SetDefault("source.credentials_file", "")
	v.SetDefault("source.workbook_path", "")
	v.SetDefault("source.worksheet", "")

	// Optional config file in the working directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables with VOCAB_ prefix, e.g. VOCAB_SERVER_PORT,
	// VOCAB_AUTH_TOKEN_SECRET, VOCAB_SOURCE_SPREADSHEET_ID.
	v.SetEnvPrefix("VOCAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := validateSource(cfg.Source); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validateSource checks the kind-specific fields that struct tags cannot
// express.
func validateSource(cfg SourceConfig) error {
	switch cfg.Kind {
	case "google_sheet":
		if cfg.SpreadsheetID == "" {
			return errors.New("config validation failed: source.spreadsheet_id is required for google_sheet sources")
		}
		if cfg.CredentialsFile == "" {
			return errors.New("config validation failed: source.credentials_file is required for google_sheet sources")
		}
	case "xlsx":
		if cfg.WorkbookPath == "" {
			return errors.New("config validation failed: source.workbook_path is required for xlsx sources")
		}
	}
	return nil
}
