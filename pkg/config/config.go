package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Session   SessionConfig
	Fixtures  FixturesConfig
	Maps      MapsConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type SessionConfig struct {
	JWTSecret   string
	ExpiryHours int
	// Bcrypt hash of the console passphrase. When empty the server hashes
	// ConsolePassword at boot and logs a warning.
	PasswordHash    string
	ConsolePassword string
}

type FixturesConfig struct {
	// Optional paths overriding the embedded seed data.
	PropertiesPath string
	UsersPath      string
}

type MapsConfig struct {
	APIKey   string
	CacheTTL time.Duration
}

type RateLimitConfig struct {
	Requests      int
	WindowSeconds int
}

type CORSConfig struct {
	AllowedOrigins []string
}

func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s *ServerConfig) IsDevelopment() bool {
	return s.Env == "development"
}

func (s *SessionConfig) Expiry() time.Duration {
	return time.Duration(s.ExpiryHours) * time.Hour
}

func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("SESSION_JWT_SECRET", "change-me-in-production")
	v.SetDefault("SESSION_EXPIRY_HOURS", 24)
	v.SetDefault("SESSION_PASSWORD_HASH", "")
	v.SetDefault("SESSION_CONSOLE_PASSWORD", "puglia")
	v.SetDefault("FIXTURES_PROPERTIES_PATH", "")
	v.SetDefault("FIXTURES_USERS_PATH", "")
	v.SetDefault("GOOGLE_MAPS_API_KEY", "")
	v.SetDefault("MAPS_CACHE_TTL_SECONDS", 300)
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")

	// Load from .env file if present
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
			Env:  v.GetString("SERVER_ENV"),
		},
		Session: SessionConfig{
			JWTSecret:       v.GetString("SESSION_JWT_SECRET"),
			ExpiryHours:     v.GetInt("SESSION_EXPIRY_HOURS"),
			PasswordHash:    v.GetString("SESSION_PASSWORD_HASH"),
			ConsolePassword: v.GetString("SESSION_CONSOLE_PASSWORD"),
		},
		Fixtures: FixturesConfig{
			PropertiesPath: v.GetString("FIXTURES_PROPERTIES_PATH"),
			UsersPath:      v.GetString("FIXTURES_USERS_PATH"),
		},
		Maps: MapsConfig{
			APIKey:   v.GetString("GOOGLE_MAPS_API_KEY"),
			CacheTTL: time.Duration(v.GetInt("MAPS_CACHE_TTL_SECONDS")) * time.Second,
		},
		RateLimit: RateLimitConfig{
			Requests:      v.GetInt("RATE_LIMIT_REQUESTS"),
			WindowSeconds: v.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
