package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devSessionSecret = "dev-session-secret-change-me"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Stats    StatsConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port               string
	AllowedOrigins     []string
	RateLimitPerMinute int
	StaticDir          string // compiled web client, optional
}

// DatabaseConfig contains Postgres settings.
type DatabaseConfig struct {
	URL string
}

// RedisConfig contains settings for the token revocation store. An empty
// Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
}

// AuthConfig contains login and session settings.
type AuthConfig struct {
	SessionSecret      string
	GoogleClientID     string
	GoogleClientSecret string
	CallbackURL        string
	CookieSecure       bool
}

// StatsConfig contains aggregation settings.
type StatsConfig struct {
	Location *time.Location
}

// LoadDotEnv reads .env into the environment when the file exists.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}
}

// Load reads configuration from environment variables with defaults.
// Outside APP_ENV=development SESSION_SECRET is required.
func Load() (*Config, error) {
	development := getEnv("APP_ENV", "") == "development"

	rateLimit, err := getEnvInt("RATE_LIMIT_PER_MINUTE", 100)
	if err != nil {
		return nil, err
	}
	cookieSecure, err := getEnvBool("COOKIE_SECURE", true)
	if err != nil {
		return nil, err
	}
	loc, err := loadLocation(getEnv("STATS_TIMEZONE", ""))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			AllowedOrigins:     parseCommaSeparated(getEnv("ALLOWED_ORIGINS", "*")),
			RateLimitPerMinute: rateLimit,
			StaticDir:          getEnv("STATIC_DIR", ""),
		},
		Database: DatabaseConfig{
			URL: databaseURL(),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Auth: AuthConfig{
			SessionSecret:      getEnv("SESSION_SECRET", ""),
			GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			CallbackURL:        callbackURL(),
			CookieSecure:       cookieSecure,
		},
		Stats: StatsConfig{
			Location: loc,
		},
	}

	if cfg.Auth.SessionSecret == "" {
		if !development {
			return nil, fmt.Errorf("SESSION_SECRET environment variable is not set; required outside development")
		}
		cfg.Auth.SessionSecret = devSessionSecret
	}

	return cfg, nil
}

// GoogleEnabled reports whether Google login is configured.
func (c *Config) GoogleEnabled() bool {
	return c.Auth.GoogleClientID != "" && c.Auth.GoogleClientSecret != "" && c.Auth.CallbackURL != ""
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %s, Origins: %v, RateLimit: %d/min, Redis: %q, Google: %t, Callback: %s, TZ: %s, Secrets: *** (masked) ***}",
		c.Server.Port, c.Server.AllowedOrigins, c.Server.RateLimitPerMinute, c.Redis.Addr,
		c.GoogleEnabled(), c.Auth.CallbackURL, c.Stats.Location)
}

// databaseURL prefers DATABASE_URL and otherwise assembles a DSN from the
// DB_* variables.
func databaseURL() string {
	if url := getEnv("DATABASE_URL", ""); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "altar_checkin"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func callbackURL() string {
	if url := getEnv("OAUTH_CALLBACK_URL", ""); url != "" {
		return url
	}
	domain := getEnv("DOMAIN", "")
	if domain == "" {
		return ""
	}
	// DOMAIN may be a comma separated list; the first entry is canonical.
	return "https://" + parseCommaSeparated(domain)[0] + "/api/callback"
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid STATS_TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		return intVal, nil
	}
	return defaultVal, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
		}
		return boolVal, nil
	}
	return defaultVal, nil
}

func parseCommaSeparated(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
