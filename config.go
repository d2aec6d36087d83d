package main

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all environment variables for the service.
type Config struct {
	Port string
	Env  string // "production" switches zap to the production config

	MongoURL string
	MongoDB  string
	RedisURL string

	// APIKeys maps a static mobile API key to the api version it was
	// issued for. Format: "key1=0.1,key2=0.2".
	APIKeys map[string]string

	AWSRegion  string
	S3Endpoint string
	S3Bucket   string
	S3Prefix   string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string

	OrderEmailFrom string
	OrderEmailTo   []string

	// PublicURL is the externally reachable base URL, used in the order
	// status link embedded in staff emails.
	PublicURL string
}

// LoadConfig loads environment variables into a Config struct, applying
// defaults and validating required fields.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("APP_ENV", "development"),
		MongoURL:       getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "food"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379"),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		S3Endpoint:     os.Getenv("AWS_S3_ENDPOINT"),
		S3Bucket:       getEnv("AWS_S3_BUCKET", "restaurant-static"),
		S3Prefix:       getEnv("AWS_S3_PREFIX", "static/"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       getEnv("SMTP_PORT", "25"),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		OrderEmailFrom: getEnv("ORDER_EMAIL_FROM", "order@example.com"),
		PublicURL:      getEnv("PUBLIC_URL", "http://localhost:8080"),
	}

	cfg.APIKeys = parseAPIKeys(os.Getenv("API_KEYS"))
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("API_KEYS is required")
	}

	for _, addr := range strings.Split(os.Getenv("ORDER_EMAIL_TO"), ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			cfg.OrderEmailTo = append(cfg.OrderEmailTo, addr)
		}
	}

	return cfg, nil
}

func parseAPIKeys(raw string) map[string]string {
	keys := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, version, found := strings.Cut(pair, "=")
		if !found {
			version = "0.1"
		}
		keys[key] = version
	}
	return keys
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
