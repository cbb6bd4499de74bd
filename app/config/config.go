// Package config loads the process configuration once at startup. The
// resulting Config is immutable and passed explicitly to the components
// that need it; there is no process-wide configuration state.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds everything the server needs at startup.
type Config struct {
	ListenAddr string
	DBPath     string
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// Load reads configuration from the environment. JWT_SECRET is required;
// everything else has a development default.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("DB_PATH", "data/badger")
	v.SetDefault("TOKEN_TTL", time.Hour)
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)

	cfg := &Config{
		ListenAddr: v.GetString("LISTEN_ADDR"),
		DBPath:     v.GetString("DB_PATH"),
		JWTSecret:  v.GetString("JWT_SECRET"),
		TokenTTL:   v.GetDuration("TOKEN_TTL"),
		BcryptCost: v.GetInt("BCRYPT_COST"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, errors.New("BCRYPT_COST out of range")
	}
	return cfg, nil
}
