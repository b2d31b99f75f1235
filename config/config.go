package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"port"`
	Env           string `mapstructure:"env"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`

	AIProvider       string `mapstructure:"ai_provider"`
	AIEndpoint       string `mapstructure:"ai_endpoint"`
	Model            string `mapstructure:"model"`
	OpenRouterAPIKey string `mapstructure:"OPENROUTER_API_KEY"`
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`

	WhopEndpoint string `mapstructure:"whop_endpoint"`

	TemplateDir   string `mapstructure:"template_dir"`
	MaxUploadSize int64  `mapstructure:"max_upload_size"`
}

// IsDevelopment reports whether auth enforcement should be bypassed.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("port", "10000")
	v.SetDefault("env", "production")
	v.SetDefault("ai_provider", "openrouter")
	v.SetDefault("ai_endpoint", "https://openrouter.ai/api/v1")
	v.SetDefault("model", "anthropic/claude-3-sonnet-20240229")
	v.SetDefault("whop_endpoint", "https://api.whop.com/api/v2/me")
	v.SetDefault("template_dir", "frontend/templates")
	v.SetDefault("max_upload_size", 10<<20)
	v.SetDefault("SESSION_SECRET", "default-secret-key-12345")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENROUTER_API_KEY")
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("SESSION_SECRET")
	v.BindEnv("env", "APP_ENV")
	v.BindEnv("port", "PORT")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
