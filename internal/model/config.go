package model

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DisplayConfig holds UI/rendering preferences applied at startup.
type DisplayConfig struct {
	Theme            string `mapstructure:"theme" yaml:"theme"`
	SidebarCollapsed bool   `mapstructure:"sidebar_collapsed" yaml:"sidebar_collapsed"`
	StartView        string `mapstructure:"start_view" yaml:"start_view"`
	TaskView         string `mapstructure:"task_view" yaml:"task_view"`
}

// LogConfig controls where and how verbosely the program logs.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	User    User          `mapstructure:"user" yaml:"user"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// Theme names accepted in display.theme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DarkMode reports whether the configured theme is dark.
func (d DisplayConfig) DarkMode() bool {
	return d.Theme == ThemeDark
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/marketinghub/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "marketinghub", "config.yaml")
}

// DefaultLogPath returns the log file used when log.file is unset.
func DefaultLogPath() string {
	return filepath.Join(os.TempDir(), "marketinghub.log")
}

// defaultAppConfig returns the configuration used when no file exists.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		User: User{
			Name:  "Sarah Johnson",
			Email: "sarah@company.com",
			Role:  "Marketing Lead",
		},
		Display: DisplayConfig{
			Theme:     ThemeLight,
			StartView: "dashboard",
			TaskView:  "kanban",
		},
		Log: LogConfig{
			File:  DefaultLogPath(),
			Level: "info",
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
// Unknown view names are kept verbatim; callers validate them.
func LoadConfig(path string) (*AppConfig, error) {
	defaults := defaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("user.name", defaults.User.Name)
	v.SetDefault("user.email", defaults.User.Email)
	v.SetDefault("user.role", defaults.User.Role)
	v.SetDefault("display.theme", defaults.Display.Theme)
	v.SetDefault("display.sidebar_collapsed", false)
	v.SetDefault("display.start_view", defaults.Display.StartView)
	v.SetDefault("display.task_view", defaults.Display.TaskView)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return defaults, nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
