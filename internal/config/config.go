package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const (
	GuestStoreMemory = "memory"
	GuestStoreS3     = "s3"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	AppURL      string
	FrontendURL string
	Port        string
	ContentPath string
	Timezone    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret          string
	JWTExpiry          time.Duration
	CORSAllowedOrigins []string
	SecureCookies      bool

	// OAuth (Kakao)
	KakaoClientID     string
	KakaoClientSecret string

	// Leaderboard cache (optional, disabled when REDIS_URL is empty)
	RedisURL            string
	LeaderboardCacheTTL time.Duration

	// Guest mode storage: "memory" or "s3"
	GuestStore string

	// Observability (optional)
	SentryDSN string

	// Storage (S3-compatible: MinIO, AWS S3, Cloudflare R2, etc.), only used when GUEST_STORE=s3
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "Goalboard"),
		AppEnv:      envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:      envRequired("APP_URL"), // Required: base URL for OAuth redirects
		FrontendURL: envString("FRONTEND_URL", envString("APP_URL", "")),
		Port:        envString("PORT", "8090"),
		ContentPath: envString("CONTENT_PATH", "content"),
		Timezone:    envString("APP_TIMEZONE", "Asia/Seoul"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/goalboard.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Security
		JWTSecret:          envRequired("JWT_SECRET"),
		JWTExpiry:          envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days
		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		SecureCookies:      envBool("SECURE_COOKIES", envString("APP_ENV", "development") == "production"),

		// OAuth
		KakaoClientID:     envString("KAKAO_CLIENT_ID", ""),
		KakaoClientSecret: envString("KAKAO_CLIENT_SECRET", ""),

		// Cache
		RedisURL:            envString("REDIS_URL", ""),
		LeaderboardCacheTTL: envDuration("LEADERBOARD_CACHE_TTL", time.Minute),

		GuestStore: envString("GUEST_STORE", GuestStoreMemory),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage
		S3Region:    envString("S3_REGION", "us-east-1"),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""), // Optional: for non-AWS providers
	}

	err = cfg.Validate()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	return cfg
}

// Validate reports every misconfiguration at once.
func (c *Config) Validate() error {
	var errs []error

	if c.AppEnv != "development" && c.AppEnv != "production" {
		errs = append(errs, fmt.Errorf("APP_ENV must be development or production, got %q", c.AppEnv))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("APP_TIMEZONE %q: %w", c.Timezone, err))
	}
	switch c.GuestStore {
	case GuestStoreMemory:
	case GuestStoreS3:
		if c.S3Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required when GUEST_STORE=s3"))
		}
	default:
		errs = append(errs, fmt.Errorf("GUEST_STORE must be memory or s3, got %q", c.GuestStore))
	}
	if c.IsProduction() {
		if c.KakaoClientID == "" {
			errs = append(errs, errors.New("production deployment requires KAKAO_CLIENT_ID"))
		}
		if len(c.JWTSecret) < 32 {
			errs = append(errs, errors.New("JWT_SECRET must be at least 32 characters in production"))
		}
	}

	return errors.Join(errs...)
}

// Location returns the configured timezone, UTC if it cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// envList splits a comma separated value, dropping empty items.
func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var items []string
	for _, item := range strings.Split(v, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// All secrets, credentials, and sensitive data are excluded.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:     c.AppName,
		AppEnv:      c.AppEnv,
		AppURL:      c.AppURL,
		FrontendURL: c.FrontendURL,
		Port:        c.Port,
		Timezone:    c.Timezone,

		SecureCookies: c.SecureCookies,
		KakaoClientID: c.KakaoClientID,
	}
}
