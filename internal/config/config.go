// Package config loads server configuration from config.yaml, environment
// variables (FOLIO_ prefix), and defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all folio configuration.
type Config struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	DataDir        string   `mapstructure:"dataDir"`
	StoreBackend   string   `mapstructure:"storeBackend"`
	UploadDir      string   `mapstructure:"uploadDir"`
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
	SiteTitle      string   `mapstructure:"siteTitle"`

	Admin AdminConfig `mapstructure:"admin"`
}

// AdminConfig identifies the single admin account and signs its sessions.
type AdminConfig struct {
	Email        string        `mapstructure:"email"`
	PasswordHash string        `mapstructure:"passwordHash"`
	JWTSecret    string        `mapstructure:"jwtSecret"`
	SessionTTL   time.Duration `mapstructure:"sessionTTL"`
}

// Addr returns the host:port the server listens on.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration. cfgFile overrides the default search for a
// config.yaml in the working directory; either way env vars win over file
// values and defaults fill the gaps.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8080)
	v.SetDefault("dataDir", "./data")
	v.SetDefault("storeBackend", "json")
	v.SetDefault("uploadDir", "./data/uploads")
	v.SetDefault("allowedOrigins", []string{"*"})
	v.SetDefault("siteTitle", "Portfolio")
	v.SetDefault("admin.email", "admin@example.com")
	// Registered empty so env-only overrides are picked up by Unmarshal.
	v.SetDefault("admin.passwordHash", "")
	v.SetDefault("admin.jwtSecret", "")
	v.SetDefault("admin.sessionTTL", 7*24*time.Hour)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if cfgFile != "" {
			return Config{}, fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// ValidateForServe checks the fields the server cannot run without.
func (c Config) ValidateForServe() error {
	if c.Admin.JWTSecret == "" {
		return fmt.Errorf("admin.jwtSecret is required (set FOLIO_ADMIN_JWTSECRET or config.yaml)")
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("admin.passwordHash is required (generate one with `folio hash-password`)")
	}
	return nil
}
