package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	DatabaseURL string
	JWTSecret   string
	BcryptCost  int

	CORSOrigins   []string
	UploadDir     string
	PublicBaseURL string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	MongoDBURI      string
	MongoDBDatabase string
}

func LoadConfig() (*Config, error) {
	cfg, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	port := getEnvWithDefault("PORT", "8080")
	cfg.Port = port
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.CORSOrigins = splitList(getEnvWithDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"))
	cfg.UploadDir = getEnvWithDefault("UPLOAD_DIR", "./uploads")
	cfg.PublicBaseURL = getEnvWithDefault("PUBLIC_BASE_URL", "http://localhost:"+port)
	cfg.CloudinaryCloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	cfg.CloudinaryAPIKey = os.Getenv("CLOUDINARY_API_KEY")
	cfg.CloudinaryAPISecret = os.Getenv("CLOUDINARY_API_SECRET")
	cfg.MongoDBURI = os.Getenv("MONGODB_URI")
	cfg.MongoDBDatabase = getEnvWithDefault("MONGODB_DATABASE", "carrental")

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// LoadDatabaseConfig reads only the settings needed to reach and populate
// the database, for tools such as the seeder.
func LoadDatabaseConfig() (*Config, error) {
	cfg := &Config{
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	cost, err := strconv.Atoi(getEnvWithDefault("BCRYPT_COST", "10"))
	if err != nil {
		return nil, fmt.Errorf("BCRYPT_COST must be an integer: %w", err)
	}
	cfg.BcryptCost = cost

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// HasCloudinary reports whether all Cloudinary credentials are set.
func (c *Config) HasCloudinary() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}
