// internal/config/config.go
package config

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	custom_errors "gitlab-timesheet/internal/errors"
)

// Config holds all configuration for the application.
type Config struct {
	LogLevel    string   `mapstructure:"LOG_LEVEL"`
	GitLabURL   string   `mapstructure:"GITLAB_URL"`
	GitLabToken string   `mapstructure:"GITLAB_TOKEN"`
	UserID      string   `mapstructure:"USER_ID"`
	ProjectIDs  []string `mapstructure:"PROJECT_IDS"`
	MandayHours int      `mapstructure:"MANDAY_HOURS"`
	CutoverDay  int      `mapstructure:"CUTOVER_DAY"`
	OutputDir   string   `mapstructure:"OUTPUT_DIR"`

	// Parsed form of ProjectIDs; the allow-list passed to project discovery.
	ProjectIDSet []int64 `mapstructure:"-"`
}

// LoadConfig reads configuration from file and/or environment variables.
func LoadConfig() (*Config, error) {
	// Set default values
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GITLAB_URL", "https://gitlab.com/api/v4")
	viper.SetDefault("MANDAY_HOURS", 8)
	viper.SetDefault("CUTOVER_DAY", 10)
	viper.SetDefault("OUTPUT_DIR", "output")

	// Load from .env file if it exists
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // Ignore error if file not found

	// Bind environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate required fields
	if cfg.GitLabToken == "" {
		return nil, errors.New("GITLAB_TOKEN is a required configuration field")
	}
	if cfg.UserID == "" {
		return nil, errors.New("USER_ID is a required configuration field")
	}
	if len(cfg.ProjectIDs) == 0 {
		return nil, errors.New("PROJECT_IDS must contain at least one project id")
	}

	// The user id doubles as the identity split into name columns, so it
	// must be 'given.surname'.
	parts := strings.Split(cfg.UserID, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, &custom_errors.ErrInvalidUserID{UserID: cfg.UserID}
	}

	for _, raw := range cfg.ProjectIDs {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, &custom_errors.ErrInvalidProjectID{ID: raw}
		}
		cfg.ProjectIDSet = append(cfg.ProjectIDSet, id)
	}

	return &cfg, nil
}
