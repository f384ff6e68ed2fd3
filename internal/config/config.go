package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App    AppConfig
	Store  StoreConfig
	Logger LoggerConfig
	Auth   AuthConfig
	Admin  AdminConfig
}

// AppConfig controls API server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// StoreConfig holds the relational store settings. The default DSN keeps the
// database entirely in memory; cache=shared lets all pooled connections see
// the same database.
type StoreConfig struct {
	DSN      string
	SeedDemo bool
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines token and credential parameters.
type AuthConfig struct {
	JWTSecret             string
	Issuer                string
	Audience              string
	AccessTokenTTLMinutes int
	ClockSkewSeconds      int
	BcryptCost            int
	SeedUsers             string
}

// AdminConfig controls the admin front-end server.
type AdminConfig struct {
	Host              string
	Port              string
	APIBaseURL        string
	SessionTTLMinutes int
	CookieSecure      bool
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	skew := getEnvAsInt("AUTH_CLOCK_SKEW_SECONDS", 60)
	if skew < 0 || skew > 120 {
		return nil, fmt.Errorf("AUTH_CLOCK_SKEW_SECONDS out of range [0,120]: %d", skew)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "university-records"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Store: StoreConfig{
			DSN:      getEnv("STORE_DSN", "file:university?mode=memory&cache=shared"),
			SeedDemo: getEnvAsBool("STORE_SEED_DEMO", true),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret-change-me-0123456789abcdef"),
			Issuer:                getEnv("AUTH_JWT_ISSUER", "university-records"),
			Audience:              getEnv("AUTH_JWT_AUDIENCE", "university-records-clients"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			ClockSkewSeconds:      skew,
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 10),
			SeedUsers:             getEnv("AUTH_SEED_USERS", "wsei:wsei:Admin,student:student:User"),
		},
		Admin: AdminConfig{
			Host:              getEnv("ADMIN_HOST", "0.0.0.0"),
			Port:              getEnv("ADMIN_PORT", "8081"),
			APIBaseURL:        getEnv("ADMIN_API_BASE_URL", "http://127.0.0.1:8080"),
			SessionTTLMinutes: getEnvAsInt("ADMIN_SESSION_TTL_MINUTES", 60),
			CookieSecure:      getEnvAsBool("ADMIN_COOKIE_SECURE", false),
		},
	}

	return cfg, nil
}

// Addr returns the API HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Addr returns the admin HTTP bind address.
func (a AdminConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// SessionTTL returns the admin session lifetime.
func (a AdminConfig) SessionTTL() time.Duration {
	if a.SessionTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(a.SessionTTLMinutes) * time.Minute
}

// AccessTokenTTL returns the token lifetime.
func (a AuthConfig) AccessTokenTTL() time.Duration {
	if a.AccessTokenTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(a.AccessTokenTTLMinutes) * time.Minute
}

// ClockSkew returns the validation leeway.
func (a AuthConfig) ClockSkew() time.Duration {
	return time.Duration(a.ClockSkewSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
