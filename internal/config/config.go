// Package config provides configuration management for Tock.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/xvierd/tock-cli/internal/domain"
)

// Config holds all configuration for the Tock application.
type Config struct {
	Countdown     CountdownConfig    `mapstructure:"countdown"`
	Display       DisplayConfig      `mapstructure:"display"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// CountdownConfig holds countdown defaults.
type CountdownConfig struct {
	Duration Duration `mapstructure:"duration"`
}

// DisplayConfig holds how the clock digits are drawn.
type DisplayConfig struct {
	Style     domain.Style `mapstructure:"style"`
	WithDecis bool         `mapstructure:"with_decis"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorRunning  string `mapstructure:"color_running"`
	ColorPaused   string `mapstructure:"color_paused"`
	ColorDone     string `mapstructure:"color_done"`
	ColorEdit     string `mapstructure:"color_edit"`
	ColorTitle    string `mapstructure:"color_title"`
	ColorHelp     string `mapstructure:"color_help"`
	GradientStart string `mapstructure:"gradient_start"`
	GradientEnd   string `mapstructure:"gradient_end"`
	IconApp       string `mapstructure:"icon_app"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorRunning:  "#7C6FE0",
		ColorPaused:   "#6B7280",
		ColorDone:     "#4ECDC4",
		ColorEdit:     "#F59E0B",
		ColorTitle:    "#6B7280",
		ColorHelp:     "#95A5A6",
		GradientStart: "#7C6FE0",
		GradientEnd:   "#A78BFA",
		IconApp:       "⏱",
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Countdown: CountdownConfig{
			Duration: Duration(10 * time.Minute),
		},
		Display: DisplayConfig{
			Style:     domain.StyleFull,
			WithDecis: false,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   false,
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	// Set defaults
	setDefaults()

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	// Viper's default hook chain does not consult TextUnmarshaler, which
	// the Duration and style fields rely on.
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := viper.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	// Set all values
	viper.Set("countdown.duration", cfg.Countdown.Duration.String())
	viper.Set("display.style", cfg.Display.Style.String())
	viper.Set("display.with_decis", cfg.Display.WithDecis)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.sound", cfg.Notifications.Sound)
	viper.Set("theme.color_running", cfg.Theme.ColorRunning)
	viper.Set("theme.color_paused", cfg.Theme.ColorPaused)
	viper.Set("theme.color_done", cfg.Theme.ColorDone)
	viper.Set("theme.color_edit", cfg.Theme.ColorEdit)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)
	viper.Set("theme.gradient_start", cfg.Theme.GradientStart)
	viper.Set("theme.gradient_end", cfg.Theme.GradientEnd)
	viper.Set("theme.icon_app", cfg.Theme.IconApp)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tock", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("countdown.duration", "10m0s")
	viper.SetDefault("display.style", "full")
	viper.SetDefault("display.with_decis", false)
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.sound", false)

	// Theme defaults
	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_running", defaults.ColorRunning)
	viper.SetDefault("theme.color_paused", defaults.ColorPaused)
	viper.SetDefault("theme.color_done", defaults.ColorDone)
	viper.SetDefault("theme.color_edit", defaults.ColorEdit)
	viper.SetDefault("theme.color_title", defaults.ColorTitle)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
	viper.SetDefault("theme.gradient_start", defaults.GradientStart)
	viper.SetDefault("theme.gradient_end", defaults.GradientEnd)
	viper.SetDefault("theme.icon_app", defaults.IconApp)
}
