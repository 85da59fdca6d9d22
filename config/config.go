package config

import (
	"os"

	"github.com/joho/godotenv"
)

// GateMode is fixed at startup. The gate never re-reads the environment
// while serving requests.
type GateMode string

const (
	GateEnforce  GateMode = "enforce"
	GateDisabled GateMode = "disabled"
)

type AppConfig struct {
	Port           string
	BasePath       string
	AllowOrigins   string
	AuthServiceURL string
	GateMode       GateMode
}

// Config returns the value of an environment variable, loading .env first
// if one is present.
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the runtime configuration once. An empty AUTH_SERVICE_URL
// selects the disabled gate mode explicitly here rather than being probed
// per request.
func Load() AppConfig {
	godotenv.Load(".env")

	cfg := AppConfig{
		Port:           getEnv("PORT", "8000"),
		BasePath:       getEnv("BASE_PATH", "/accommodations"),
		AllowOrigins:   getEnv("ALLOW_ORIGINS", "*"),
		AuthServiceURL: os.Getenv("AUTH_SERVICE_URL"),
		GateMode:       GateEnforce,
	}
	if cfg.AuthServiceURL == "" {
		cfg.GateMode = GateDisabled
	}
	return cfg
}
