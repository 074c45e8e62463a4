// Package config loads runtime settings from the config file,
// environment variables, and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	constants "sysdash/config"
)

// Config is the fully resolved runtime configuration.
type Config struct {
	CPUThreshold    float64 `mapstructure:"cpu_threshold"`
	MemoryThreshold float64 `mapstructure:"memory_threshold"`
	DiskThreshold   float64 `mapstructure:"disk_threshold"`

	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	OpenAIOrg       string `mapstructure:"openai_org"`
	OpenAIModel     string `mapstructure:"openai_model"`
	OpenAIMaxTokens int    `mapstructure:"openai_max_tokens"`

	LogFile string `mapstructure:"log_file"`
}

// Load reads the config file if one exists and overlays environment
// variables. A missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home + constants.CONFIG_DIR_NAME)
	}
	v.AddConfigPath(".")

	v.SetDefault("cpu_threshold", constants.DEFAULT_CPU_THRESHOLD)
	v.SetDefault("memory_threshold", constants.DEFAULT_MEMORY_THRESHOLD)
	v.SetDefault("disk_threshold", constants.DEFAULT_DISK_THRESHOLD)
	v.SetDefault("openai_model", constants.DEFAULT_OPENAI_MODEL)
	v.SetDefault("openai_max_tokens", constants.DEFAULT_MAX_TOKENS)
	v.SetDefault("log_file", constants.LOG_FILE)

	v.BindEnv("openai_api_key", "OPENAI_API_KEY")
	v.BindEnv("openai_org", "OPENAI_API_ORG_ID")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
