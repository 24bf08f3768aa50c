package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	MinIO    MinIOConfig
	JWT      JWTConfig
	Server   ServerConfig
	Seed     SeedConfig
	Progress ProgressConfig
}

type DBConfig struct {
	Type         string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
}

type MinIOConfig struct {
	Enabled        bool
	Endpoint       string
	PublicEndpoint string
	AccessKey      string
	SecretKey      string
	Bucket         string
	UseSSL         bool
}

type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

type ServerConfig struct {
	Port        string
	CORSOrigins string
	BodyLimitMB int
}

type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
}

type ProgressConfig struct {
	QueueSize int
}

// Load reads an optional .env file from the working directory, then the process
// environment. Values already present in the environment win over the file.
func Load() *Config {
	_ = godotenv.Load()

	dbType := strings.ToLower(getEnv("DB_TYPE", "postgres"))

	return &Config{
		DB: DBConfig{
			Type:         dbType,
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", defaultDBPort(dbType)),
			User:         getEnv("DB_USER", "gym"),
			Password:     getEnv("DB_PASSWORD", "gym_secret"),
			Name:         getEnv("DB_NAME", "gym_management"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
		},
		MinIO: MinIOConfig{
			Enabled:        getEnvAsBool("MINIO_ENABLED", false),
			Endpoint:       getEnv("MINIO_ENDPOINT", "localhost:9000"),
			PublicEndpoint: getEnv("MINIO_PUBLIC_ENDPOINT", getEnv("MINIO_ENDPOINT", "localhost:9000")),
			AccessKey:      getEnv("MINIO_ACCESS_KEY", "gym"),
			SecretKey:      getEnv("MINIO_SECRET_KEY", "gym_secret"),
			Bucket:         getEnv("MINIO_BUCKET", "gym-images"),
			UseSSL:         getEnvAsBool("MINIO_USE_SSL", false),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", "change-me-in-production"),
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		},
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000,http://10.0.2.2:3000"),
			BodyLimitMB: getEnvAsInt("SERVER_BODY_LIMIT_MB", 10),
		},
		Seed: SeedConfig{
			AdminEmail:    strings.ToLower(getEnv("SEED_ADMIN_EMAIL", "admin@gym.com")),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin123"),
		},
		Progress: ProgressConfig{
			QueueSize: getEnvAsInt("PROGRESS_QUEUE_SIZE", 100),
		},
	}
}

func defaultDBPort(dbType string) string {
	switch dbType {
	case "mysql", "mariadb":
		return "3306"
	default:
		return "5432"
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
