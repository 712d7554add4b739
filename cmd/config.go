package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// UserSeed is one account the token service can authenticate. Real
// credential storage lives with the platform; these seeds exist so the
// assistant is usable stand-alone.
type UserSeed struct {
	Username string   `mapstructure:"username"`
	Password string   `mapstructure:"password"`
	UserID   string   `mapstructure:"user_id"`
	Roles    []string `mapstructure:"roles"`
}

// Config holds all assistant configuration
type Config struct {
	// Server settings
	GRPCAddress string

	// Token settings
	JWTSecret        string
	AccessTTLMinutes int
	RefreshTTLHours  int

	// Optional collaborator credentials
	OpenAIAPIKey     string
	TelegramBotToken string

	// Seeded accounts
	Users []UserSeed `mapstructure:"users"`
}

// AccessTTL returns the access token lifetime.
func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.AccessTTLMinutes) * time.Minute
}

// RefreshTTL returns the refresh token lifetime.
func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTTLHours) * time.Hour
}

// LoadConfig loads configuration from files and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Configure environment variables - do this BEFORE reading config
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit mappings between struct fields and environment variables
	envMappings := map[string]string{
		"GRPCAddress":      "GRPC_ADDRESS",
		"JWTSecret":        "JWT_SECRET",
		"AccessTTLMinutes": "ACCESS_TTL_MINUTES",
		"RefreshTTLHours":  "REFRESH_TTL_HOURS",
		"OpenAIAPIKey":     "OPENAI_API_KEY",
		"TelegramBotToken": "TELEGRAM_BOT_TOKEN",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("assistant_config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.da-assistant")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	log.Debug().Msgf("Config loaded: GRPCAddress=%s, SeededUsers=%d",
		config.GRPCAddress, len(config.Users))

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("GRPCAddress", ":50051")
	v.SetDefault("AccessTTLMinutes", 30)
	v.SetDefault("RefreshTTLHours", 24)
}

// validateConfig validates the required configuration fields
func validateConfig(config *Config) error {
	var missingVars []string

	if config.JWTSecret == "" {
		missingVars = append(missingVars, "JWT_SECRET")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missingVars, ", "))
	}

	return nil
}
