package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	FrontendCallbackURL string
	BaseURL             string

	Google OAuthConfig

	AssetHost AssetHostConfig
}

type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// AssetHostConfig points at the third-party host that stores uploaded media
// and hands back public URLs.
type AssetHostConfig struct {
	URL            string
	Key            string
	UploadTimeout  time.Duration
	MaxUploadBytes int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	accessExpiry, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h"))
	if err != nil {
		refreshExpiry = 168 * time.Hour
	}

	uploadTimeout, err := time.ParseDuration(getEnv("ASSET_UPLOAD_TIMEOUT", "2m"))
	if err != nil {
		uploadTimeout = 2 * time.Minute
	}

	maxUploadBytes, err := strconv.ParseInt(getEnv("ASSET_MAX_UPLOAD_BYTES", "20971520"), 10, 64)
	if err != nil || maxUploadBytes <= 0 {
		maxUploadBytes = 20 << 20
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		JWTSecret:        getEnvOrPanic("JWT_SECRET"),
		JWTAccessExpiry:  accessExpiry,
		JWTRefreshExpiry: refreshExpiry,

		FrontendCallbackURL: getEnv("FRONTEND_CALLBACK_URL", "http://localhost:3000/auth/callback"),
		BaseURL:             getEnv("BASE_URL", "http://localhost:8080"),

		Google: OAuthConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		},

		AssetHost: AssetHostConfig{
			URL:            getEnv("ASSET_HOST_URL", ""),
			Key:            getEnv("ASSET_HOST_KEY", ""),
			UploadTimeout:  uploadTimeout,
			MaxUploadBytes: maxUploadBytes,
		},
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvOrPanic(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
