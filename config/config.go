package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type MinIOConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	URLExpiry  time.Duration
}

type Config struct {
	Port         string
	DB           DBConfig
	SigSalt      string
	CreatorRoles []string
	MinIO        MinIOConfig
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// LoadConfig reads the environment after godotenv has run. Creator
// roles default to the portal's fixed set and can be overridden with
// a comma-separated CREATOR_ROLES.
func LoadConfig() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "ifphub"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		SigSalt:      getEnv("SIG_SALT", "ifphub-portal"),
		CreatorRoles: parseRoles(getEnv("CREATOR_ROLES", "admin,profesor,coordinador")),
		MinIO: MinIOConfig{
			Endpoint:   getEnv("MINIO_ENDPOINT", ""),
			AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
			BucketName: getEnv("MINIO_BUCKET_NAME", "noticias"),
			UseSSL:     getEnvBool("MINIO_USE_SSL", false),
			URLExpiry:  getEnvDuration("MINIO_URL_EXPIRY", 7*24*time.Hour),
		},
	}
}

func parseRoles(raw string) []string {
	parts := strings.Split(raw, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			roles = append(roles, p)
		}
	}
	return roles
}
