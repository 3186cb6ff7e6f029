// Package config provides configuration utilities for the application.
package config

import (
	"os"

	"github.com/Veraticus/tastemood/internal/sentiment"
	"github.com/spf13/viper"
)

// LoadClassifierConfig loads classifier configuration from Viper and environment variables.
// It follows this precedence:
// 1. Viper configuration (from config file or TASTEMOOD_ env vars)
// 2. Direct environment variables (OPENAI_API_KEY, HUGOT_MODEL_PATH)
// 3. Default values
func LoadClassifierConfig() (*sentiment.Config, error) {
	config := sentiment.DefaultConfig()

	if v := viper.GetString("classifier.backend"); v != "" {
		config.Backend = v
	}
	if viper.IsSet("classifier.neutral_threshold") {
		config.NeutralThreshold = viper.GetFloat64("classifier.neutral_threshold")
	}
	if v := viper.GetString("classifier.openai.api_key"); v != "" {
		config.APIKey = v
	}
	if v := viper.GetString("classifier.openai.model"); v != "" {
		config.Model = v
	}
	if v := viper.GetString("classifier.openai.base_url"); v != "" {
		config.BaseURL = v
	}
	if v := viper.GetDuration("classifier.openai.timeout"); v > 0 {
		config.Timeout = v
	}
	if v := viper.GetString("classifier.hugot.model_path"); v != "" {
		config.ModelPath = ExpandPath(v)
	}
	if v := viper.GetString("classifier.hugot.model_name"); v != "" {
		config.ModelName = v
	}

	// Override with direct environment variables if not set
	if config.APIKey == "" {
		config.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if config.ModelPath == "" {
		if v := os.Getenv("HUGOT_MODEL_PATH"); v != "" {
			config.ModelPath = ExpandPath(v)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
