package config

import (
	"os"
	"strconv"
	"time"
)

const (
	DefaultPort             = 8000
	DefaultSessionMaxAgeSec = 604800
	DefaultCookieName       = "tok"
	DefaultStaticDir        = "public"
	DefaultLandingURL       = "/hello"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Env       string
	Host      string
	Port      int
	LogLevel  string
	StaticDir string
}

type DatabaseConfig struct {
	URL string
}

type AuthConfig struct {
	// CookieKey is the base64 form of the 32-byte key the cookie codec
	// seals with. Set once at startup; there is no rotation.
	CookieKey     string
	CookieName    string
	SessionMaxAge time.Duration
	// LandingURL is where a successful login redirects to.
	LandingURL string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Env:       getEnv("APP_ENV", "development"),
			Host:      getEnv("HOST", "0.0.0.0"),
			Port:      getEnvInt("PORT", DefaultPort),
			LogLevel:  getEnv("LOG_LEVEL", "info"),
			StaticDir: getEnv("STATIC_DIR", DefaultStaticDir),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Auth: AuthConfig{
			CookieKey:     getEnv("COOKIE_KEY", ""),
			CookieName:    getEnv("SESSION_COOKIE_NAME", DefaultCookieName),
			SessionMaxAge: time.Duration(getEnvInt("SESSION_MAX_AGE", DefaultSessionMaxAgeSec)) * time.Second,
			LandingURL:    getEnv("LOGIN_LANDING_URL", DefaultLandingURL),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
