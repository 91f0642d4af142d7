// Package config loads the run configuration for the harness: where the service
// under test lives and which account the credentialed requests use.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values for one run.
type Config struct {
	BaseURL        string `mapstructure:"BASE_URL"`
	Username       string `mapstructure:"USERNAME"`
	Password       string `mapstructure:"PASSWORD"`
	TimeoutSeconds int    `mapstructure:"TIMEOUT_SECONDS"`
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads configuration from an optional booker.yaml in the working directory,
// with environment variables (prefix BOOKER_) taking precedence over the file and
// defaults underneath both. The defaults point at the public restful-booker demo
// deployment and its documented admin account.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("booker")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("BOOKER")
	v.AutomaticEnv()

	v.SetDefault("BASE_URL", "https://restful-booker.herokuapp.com")
	v.SetDefault("USERNAME", "admin")
	v.SetDefault("PASSWORD", "password123")
	v.SetDefault("TIMEOUT_SECONDS", 30)

	if err := v.ReadInConfig(); err != nil {
		// the config file is optional; anything else is a real problem
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("could not read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse configuration: %w", err)
	}
	return cfg, nil
}
