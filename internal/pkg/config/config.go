package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"golang.org/x/crypto/bcrypt"

	"github.com/tempofy/time-tracking/internal/core/domain"
)

const envDevelopment = "development"

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Auth      AuthConfig
	Limits    LimitsConfig
	Bootstrap BootstrapConfig
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`
	// LoginRateLimit is the sustained number of login attempts per second
	// allowed from one client address.
	LoginRateLimit float64 `env:"LOGIN_RATE_LIMIT, default=5"`
}

// LimitsConfig holds the value-object length bounds.
type LimitsConfig struct {
	EmailMin    int `env:"EMAIL_MIN_LENGTH,    default=6"`
	EmailMax    int `env:"EMAIL_MAX_LENGTH,    default=254"`
	NameMin     int `env:"NAME_MIN_LENGTH,     default=2"`
	NameMax     int `env:"NAME_MAX_LENGTH,     default=100"`
	PasswordMin int `env:"PASSWORD_MIN_LENGTH, default=6"`
	PasswordMax int `env:"PASSWORD_MAX_LENGTH, default=20"`
}

// BootstrapConfig optionally registers an administrator on startup so a
// fresh in-memory store is manageable.
type BootstrapConfig struct {
	AdminName     string `env:"ADMIN_NAME, default=Administrator"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Enabled reports whether an administrator should be registered.
func (b BootstrapConfig) Enabled() bool { return b.AdminEmail != "" }

// Domain converts the bounds into domain.Limits.
func (l LimitsConfig) Domain() domain.Limits {
	return domain.Limits{
		Email:    domain.Bounds{Min: l.EmailMin, Max: l.EmailMax},
		Name:     domain.Bounds{Min: l.NameMin, Max: l.NameMax},
		Password: domain.Bounds{Min: l.PasswordMin, Max: l.PasswordMax},
	}
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool { return c.Env == envDevelopment }

// Load reads a local .env file when present, then the process environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith resolves configuration from lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" && !c.IsDevelopment() {
		return errors.New("JWT_SECRET is required outside development")
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be within [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.Auth.LoginRateLimit <= 0 {
		return errors.New("LOGIN_RATE_LIMIT must be positive")
	}
	if c.Bootstrap.Enabled() && c.Bootstrap.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD is required when ADMIN_EMAIL is set")
	}
	return c.Limits.Domain().Validate()
}
