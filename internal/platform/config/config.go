package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures all environment-driven configuration so main stays lean.
type Server struct {
	Addr          string
	DatabaseURL   string
	Redis         RedisConfig
	KafkaBrokers  string
	JWTSigningKey string
	TokenTTL      time.Duration
	LoginDomain   string

	// PurityThreshold is the minimum purity percentage below which a batch
	// classifies as substandard.
	PurityThreshold float64

	Detector DetectorConfig
}

// RedisConfig holds connection settings for the optional registry cache.
type RedisConfig struct {
	URL          string
	CacheTTL     time.Duration
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DetectorConfig holds settings for the external barcode detection service.
type DetectorConfig struct {
	BaseURL string
	ModelID string
	APIKey  string
	Timeout time.Duration
}

// FromEnv builds a Server config from environment variables with development
// defaults matching the original deployment.
func FromEnv() Server {
	jwtSigningKey := getenv("JWT_SIGNING_KEY", "dev-secret-key-change-in-production")

	return Server{
		Addr:        getenv("MEDICINNA_ADDR", ":8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			CacheTTL:     getduration("REGISTRY_CACHE_TTL", 5*time.Minute),
			PoolSize:     getint("REDIS_POOL_SIZE", 10),
			MinIdleConns: getint("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getduration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getduration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getduration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		KafkaBrokers:    os.Getenv("KAFKA_BROKERS"),
		JWTSigningKey:   jwtSigningKey,
		TokenTTL:        getduration("TOKEN_TTL", time.Hour),
		LoginDomain:     getenv("LOGIN_DOMAIN", "medicinna.app"),
		PurityThreshold: getfloat("PURITY_THRESHOLD", 90.0),
		Detector: DetectorConfig{
			BaseURL: getenv("DETECTOR_URL", "https://detect.roboflow.com"),
			ModelID: getenv("DETECTOR_MODEL_ID", "barcodes-zmxjq/4"),
			APIKey:  os.Getenv("DETECTOR_API_KEY"),
			Timeout: getduration("DETECTOR_TIMEOUT", 30*time.Second),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getfloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
