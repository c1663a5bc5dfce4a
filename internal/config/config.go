package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jfmyers9/lfm/pkg/lastfm"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Last.fm API settings
	LastFM LastFMConfig

	// Lookup history settings
	History HistoryConfig

	// Output settings
	Output OutputConfig

	// directory the config was loaded from; Save writes back here
	dir string
}

// LastFMConfig holds Last.fm specific configuration
type LastFMConfig struct {
	APIKey  string
	BaseURL string
	// Timeout per HTTP attempt, in seconds
	Timeout int

	// APIKeySource names where APIKey came from: "config" or an
	// environment variable name. Not persisted.
	APIKeySource string
}

// HistoryConfig holds lookup history configuration
type HistoryConfig struct {
	Enabled bool
	Path    string
	// MaxAge of history entries, in days. 0 keeps everything.
	MaxAge int
}

// OutputConfig holds terminal output configuration
type OutputConfig struct {
	// Width of tables in columns. 0 means auto-detect.
	Width int
	// Limit is the default page size for list commands
	Limit int
}

// Load reads configuration from file and environment.
//
// A .env file in the working directory is loaded first; it never
// overrides variables that are already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return loadFrom(getConfigDir())
}

func loadFrom(configDir string) (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	// Set defaults
	v.SetDefault("lastfm.base_url", lastfm.DefaultBaseURL)
	v.SetDefault("lastfm.timeout", int(lastfm.DefaultTimeout.Seconds()))
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(configDir, "history.db"))
	v.SetDefault("history.max_age", 90)
	v.SetDefault("output.width", 0)
	v.SetDefault("output.limit", 10)

	// Read config file (optional - don't fail if missing)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Environment variables
	_ = v.BindEnv("lastfm.api_key", "LFM_API_KEY")
	_ = v.BindEnv("lastfm.base_url", "LFM_BASE_URL")
	_ = v.BindEnv("history.path", "LFM_HISTORY_DB")
	_ = v.BindEnv("output.width", "LFM_OUTPUT_WIDTH")
	_ = v.BindEnv("output.limit", "LFM_LIMIT")

	// Map config to struct
	cfg := &Config{
		LastFM: LastFMConfig{
			APIKey:  v.GetString("lastfm.api_key"),
			BaseURL: v.GetString("lastfm.base_url"),
			Timeout: v.GetInt("lastfm.timeout"),
		},
		History: HistoryConfig{
			Enabled: v.GetBool("history.enabled"),
			Path:    v.GetString("history.path"),
			MaxAge:  v.GetInt("history.max_age"),
		},
		Output: OutputConfig{
			Width: v.GetInt("output.width"),
			Limit: v.GetInt("output.limit"),
		},
		dir: configDir,
	}

	switch {
	case os.Getenv("LFM_API_KEY") != "":
		cfg.LastFM.APIKeySource = "LFM_API_KEY"
	case cfg.LastFM.APIKey != "":
		cfg.LastFM.APIKeySource = "config"
	default:
		// Fall back to the variables frontend projects commonly use
		if key, name, ok := lastfm.APIKeyFromEnv(lastfm.OSEnv); ok {
			cfg.LastFM.APIKey = key
			cfg.LastFM.APIKeySource = name
		}
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "lfm")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Path returns the config file path Save writes to.
func (c *Config) Path() string {
	dir := c.dir
	if dir == "" {
		dir = getConfigDir()
	}
	return filepath.Join(dir, "config.yaml")
}

// Save writes configuration to file.
//
// An API key that came from the environment is not written.
func (c *Config) Save() error {
	v := viper.New()

	// Set values in viper
	if c.LastFM.APIKeySource == "" || c.LastFM.APIKeySource == "config" {
		v.Set("lastfm.api_key", c.LastFM.APIKey)
	}
	v.Set("lastfm.base_url", c.LastFM.BaseURL)
	v.Set("lastfm.timeout", c.LastFM.Timeout)
	v.Set("history.enabled", c.History.Enabled)
	v.Set("history.path", c.History.Path)
	v.Set("history.max_age", c.History.MaxAge)
	v.Set("output.width", c.Output.Width)
	v.Set("output.limit", c.Output.Limit)

	// Write to file
	return v.WriteConfigAs(c.Path())
}
