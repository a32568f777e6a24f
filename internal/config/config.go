package config

import (
	"errors"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the server needs up front. It is loaded once at
// startup and injected into the components that use it; nothing reads the
// environment at call time.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"15m"`

	// RTCEndpoint is the realtime transport address handed out alongside
	// issued tokens. The server does not check its reachability.
	RTCEndpoint string `env:"RTC_ENDPOINT"`

	// AdminKeyHash is a bcrypt hash of the key required on room
	// create/close. Empty disables the guard.
	AdminKeyHash string `env:"ADMIN_KEY_HASH"`

	RoomCacheTTL time.Duration `env:"ROOM_CACHE_TTL" envDefault:"1m"`
}

// Load reads .env.local, then .env, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces required settings before any component starts.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is not set")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}
