package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	RedisURL     string
	VendorAPIURL string
	SyncToken    string
	HTTPPort     string
	MetricsPort  string
	Env          string
}

func Load() *Config {
	// Carga .env desde la raíz del proyecto
	_ = godotenv.Load("../../.env")
	// Si no lo encuentra, prueba en el directorio actual
	_ = godotenv.Load()
	return &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		VendorAPIURL: os.Getenv("VENDOR_API_URL"),
		SyncToken:    os.Getenv("SYNC_TOKEN"),
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		MetricsPort:  getEnv("METRICS_PORT", "9090"),
		Env:          getEnv("ENV", "development"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
