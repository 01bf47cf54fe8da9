package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"signal/internal/core"
)

// Config holds all application configuration
type Config struct {
	App    App    `mapstructure:"app"`
	AI     AI     `mapstructure:"ai"`
	Feeds  Feeds  `mapstructure:"feeds"`
	Digest Digest `mapstructure:"digest"`
	Output Output `mapstructure:"output"`
}

// App holds general application configuration
type App struct {
	Debug      bool   `mapstructure:"debug"`
	LogLevel   string `mapstructure:"log_level"`
	DataDir    string `mapstructure:"data_dir"`
	ConfigFile string `mapstructure:"config_file"`
}

// AI holds AI/LLM configuration
type AI struct {
	Gemini GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Timeout     string  `mapstructure:"timeout"`
	MaxTokens   int32   `mapstructure:"max_tokens"`
	Temperature float32 `mapstructure:"temperature"`
}

// Feeds holds RSS fetching configuration
type Feeds struct {
	Timeout     string `mapstructure:"timeout"`
	UserAgent   string `mapstructure:"user_agent"`
	Concurrency int    `mapstructure:"concurrency"`
}

// Digest holds digest sizing configuration
type Digest struct {
	DailyMinutes        int `mapstructure:"daily_minutes"`
	WeeklyArticleTarget int `mapstructure:"weekly_article_target"`
	WeeklyWindowDays    int `mapstructure:"weekly_window_days"`
}

// Output holds output configuration
type Output struct {
	Directory string `mapstructure:"directory"`
	Format    string `mapstructure:"format"`
}

var globalConfig *Config

// Load loads the configuration from various sources
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	// Configure viper
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".signal")
		viper.SetConfigType("yaml")
	}

	// Set defaults
	setDefaults()

	// Bind environment variables
	bindEnvironmentVariables()

	// Enable automatic environment variable reading
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into struct
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Apply post-processing
	if err := postProcessConfig(config); err != nil {
		return nil, fmt.Errorf("error post-processing config: %w", err)
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	defaults := core.DefaultSettings()

	// App defaults
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.data_dir", ".signal-data")

	// AI defaults
	viper.SetDefault("ai.gemini.model", "gemini-2.5-flash")
	viper.SetDefault("ai.gemini.timeout", "30s")
	viper.SetDefault("ai.gemini.max_tokens", 8192)
	viper.SetDefault("ai.gemini.temperature", 0.7)

	// Feeds defaults
	viper.SetDefault("feeds.timeout", "10s")
	viper.SetDefault("feeds.user_agent", "Signal/1.0")
	viper.SetDefault("feeds.concurrency", 5)

	// Digest defaults
	viper.SetDefault("digest.daily_minutes", defaults.DailyMinutes)
	viper.SetDefault("digest.weekly_article_target", defaults.WeeklyArticleTarget)
	viper.SetDefault("digest.weekly_window_days", defaults.WeeklyWindowDays)

	// Output defaults
	viper.SetDefault("output.directory", "digests")
	viper.SetDefault("output.format", "markdown")
}

// bindEnvironmentVariables sets up flexible environment variable binding
func bindEnvironmentVariables() {
	// Gemini API key - support multiple formats
	bindEnvKeys("ai.gemini.api_key", []string{
		"GEMINI_API_KEY",
		"GOOGLE_GEMINI_API_KEY",
		"GOOGLE_AI_API_KEY",
	})

	bindEnvKeys("app.debug", []string{
		"DEBUG",
		"SIGNAL_DEBUG",
	})

	bindEnvKeys("app.data_dir", []string{
		"SIGNAL_DATA_DIR",
	})
}

// bindEnvKeys binds the first found environment variable to a viper key
func bindEnvKeys(viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(viperKey, value)
			return
		}
	}
}

// postProcessConfig applies post-processing to configuration values
func postProcessConfig(config *Config) error {
	// Expand paths
	if config.App.DataDir != "" {
		config.App.DataDir = expandPath(config.App.DataDir)
	}
	if config.Output.Directory != "" {
		config.Output.Directory = expandPath(config.Output.Directory)
	}

	// Validate durations
	durations := map[string]string{
		"ai.gemini.timeout": config.AI.Gemini.Timeout,
		"feeds.timeout":     config.Feeds.Timeout,
	}
	for key, duration := range durations {
		if duration != "" {
			if _, err := time.ParseDuration(duration); err != nil {
				return fmt.Errorf("invalid duration for %s: %s", key, duration)
			}
		}
	}

	if config.Feeds.Concurrency < 1 {
		config.Feeds.Concurrency = 1
	}

	// Digest sizing is clamped rather than rejected so a typo in the config
	// file never blocks a refresh.
	config.Digest.DailyMinutes = clampInt(config.Digest.DailyMinutes, 5, 60)
	config.Digest.WeeklyArticleTarget = clampInt(config.Digest.WeeklyArticleTarget, 3, 20)
	if config.Digest.WeeklyWindowDays < 1 {
		config.Digest.WeeklyWindowDays = core.DefaultSettings().WeeklyWindowDays
	}

	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// Settings converts the digest configuration into engine settings.
func (c *Config) Settings() core.Settings {
	s := core.DefaultSettings()
	s.DailyMinutes = c.Digest.DailyMinutes
	s.WeeklyArticleTarget = c.Digest.WeeklyArticleTarget
	s.WeeklyWindowDays = c.Digest.WeeklyWindowDays
	return s
}

// GeminiTimeout returns the parsed Gemini request timeout.
func (c *Config) GeminiTimeout() time.Duration {
	d, err := time.ParseDuration(c.AI.Gemini.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// FeedTimeout returns the parsed per-feed fetch timeout.
func (c *Config) FeedTimeout() time.Duration {
	d, err := time.ParseDuration(c.Feeds.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// Convenience getters for commonly used configuration values
func GetGeminiAPIKey() string { return Get().AI.Gemini.APIKey }
func GetGeminiModel() string  { return Get().AI.Gemini.Model }
func GetDataDir() string      { return Get().App.DataDir }
func GetOutputDir() string    { return Get().Output.Directory }

// Reset clears the global configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viper.Reset()
}
