package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
	Source SourceConfig `mapstructure:"source"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains the session-token settings. Sessions are anonymous;
// the secret only signs the session ID so tokens cannot be forged.
type AuthConfig struct {
	TokenSecret          string `mapstructure:"token_secret"           validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// SourceConfig describes the external spreadsheet source. Kind selects the
// implementation; the remaining fields apply to one kind each. An empty
// Kind disables the external source (sample-only operation).
type SourceConfig struct {
	Kind string `mapstructure:"kind" validate:"omitempty,oneof=google_sheet xlsx"`

	// google_sheet
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	ReadRange       string `mapstructure:"read_range"`
	CredentialsFile string `mapstructure:"credentials_file"`

	// xlsx
	WorkbookPath string `mapstructure:"workbook_path"`
	Worksheet    string `mapstructure:"worksheet"`
}
