package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	UI     UIConfig     `mapstructure:"ui"`
	Window WindowConfig `mapstructure:"window"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// UIConfig holds user interface configuration
type UIConfig struct {
	StartDir     string `mapstructure:"start_dir"`
	DateFormat   string `mapstructure:"date_format"`
	ShowHidden   bool   `mapstructure:"show_hidden"`
	MaxNameWidth int    `mapstructure:"max_name_width"`
	Mouse        bool   `mapstructure:"mouse"`
	Watch        bool   `mapstructure:"watch"`
}

// WindowConfig holds window geometry configuration
type WindowConfig struct {
	GeometryFile    string `mapstructure:"geometry_file"`
	RestoreGeometry bool   `mapstructure:"restore_geometry"`
	QueryTimeoutMs  int    `mapstructure:"query_timeout_ms"`
}

// DefaultDateFormat renders dates like 03/05/2024 02:30 PM
const DefaultDateFormat = "01/02/2006 03:04 PM"

// Load loads configuration from multiple sources with priority:
// 1. Command line flags (highest)
// 2. Environment variables
// 3. Configuration file
// 4. Defaults (lowest)
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("FMGR")
	v.AutomaticEnv()

	v.BindEnv("log.level", "FMGR_LOG_LEVEL")
	v.BindEnv("log.format", "FMGR_LOG_FORMAT")
	v.BindEnv("log.file", "FMGR_LOG_FILE")
	v.BindEnv("ui.start_dir", "FMGR_START_DIR")
	v.BindEnv("ui.date_format", "FMGR_DATE_FORMAT")
	v.BindEnv("ui.show_hidden", "FMGR_SHOW_HIDDEN")
	v.BindEnv("ui.max_name_width", "FMGR_MAX_NAME_WIDTH")
	v.BindEnv("ui.mouse", "FMGR_MOUSE")
	v.BindEnv("ui.watch", "FMGR_WATCH")
	v.BindEnv("window.geometry_file", "FMGR_GEOMETRY_FILE")
	v.BindEnv("window.restore_geometry", "FMGR_RESTORE_GEOMETRY")
	v.BindEnv("window.query_timeout_ms", "FMGR_QUERY_TIMEOUT_MS")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")

		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.fmgr")
		v.AddConfigPath("/etc/fmgr/")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is not an error - we can use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when no file or environment overrides exist
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   DefaultLogFile(),
		},
		UI: UIConfig{
			DateFormat:   DefaultDateFormat,
			MaxNameWidth: 60,
			Mouse:        true,
			Watch:        true,
		},
		Window: WindowConfig{
			GeometryFile:    "properties/sizePosition.txt",
			RestoreGeometry: true,
			QueryTimeoutMs:  300,
		},
	}
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)

	v.SetDefault("ui.start_dir", d.UI.StartDir)
	v.SetDefault("ui.date_format", d.UI.DateFormat)
	v.SetDefault("ui.show_hidden", d.UI.ShowHidden)
	v.SetDefault("ui.max_name_width", d.UI.MaxNameWidth)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("ui.watch", d.UI.Watch)

	v.SetDefault("window.geometry_file", d.Window.GeometryFile)
	v.SetDefault("window.restore_geometry", d.Window.RestoreGeometry)
	v.SetDefault("window.query_timeout_ms", d.Window.QueryTimeoutMs)
}

// DefaultLogFile returns the log file used to keep diagnostics out of the UI
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), "fmgr", "app.log")
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./config.toml"
	}
	return filepath.Join(homeDir, ".fmgr", "config.toml")
}
