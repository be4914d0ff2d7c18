package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	xdgAppName = "taskdigest"
	configName = "config"
	envPrefix  = "TASKDIGEST"
)

type Config struct {
	LogLevel      string         `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Defaults      DefaultsConfig `mapstructure:"defaults"`
	DueSoonWindow time.Duration  `mapstructure:"due_soon_window" validate:"gt=0"`
	Palette       PaletteConfig  `mapstructure:"palette"`
}

// DefaultsConfig holds the placeholders used when a task lacks an assignee
// email or a customer name.
type DefaultsConfig struct {
	Email   string `mapstructure:"email" validate:"required,email"`
	Company string `mapstructure:"company" validate:"required"`
}

// PaletteConfig holds row background colours as hex codes.
type PaletteConfig struct {
	NoDueDate string `mapstructure:"no_due_date" validate:"required,hexcolor"`
	Overdue   string `mapstructure:"overdue" validate:"required,hexcolor"`
	DueSoon   string `mapstructure:"due_soon" validate:"required,hexcolor"`
	DueLater  string `mapstructure:"due_later" validate:"required,hexcolor"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("defaults.email", "no-email@example.com")
	v.SetDefault("defaults.company", "Unknown Company")
	v.SetDefault("due_soon_window", 7*24*time.Hour)
	v.SetDefault("palette.no_due_date", "#f8f9fa")
	v.SetDefault("palette.overdue", "#ffebee")
	v.SetDefault("palette.due_soon", "#fff3e0")
	v.SetDefault("palette.due_later", "#e8f5e8")
}

// GetConfigDir returns ~/.config/taskdigest.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", xdgAppName), nil
}

// Load reads configuration from defaults, an optional config file and
// TASKDIGEST_* environment variables, in increasing precedence. With an empty
// path the config directory is searched and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configName)
		if dir, err := GetConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its validate tag.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
