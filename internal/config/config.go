package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	RequirementsPath string
	ProductsPath     string

	OutputDir  string
	CleanedCSV bool

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	LoadTimeout time.Duration

	ProfileExcludeColumns []string

	OTLPCollectorURL string
}

func LoadConfig() (*Config, error) {
	// A local .env is a convenience, not a requirement.
	_ = godotenv.Load()

	config := &Config{
		RequirementsPath: getEnvString("REQUIREMENTS_CSV_PATH", "data/data_requirements.csv"),
		ProductsPath:     getEnvString("PRODUCTS_CSV_PATH", "data/data_products.csv"),

		OutputDir:  getEnvString("OUTPUT_DIR", "output"),
		CleanedCSV: getEnvBool("SAVE_CLEANED_CSV", false),

		DBHost:     getEnvString("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBUser:     getEnvString("DB_USER", "postgres"),
		DBPassword: getEnvString("DB_PASSWORD", ""),
		DBName:     getEnvString("DB_NAME", "datamart"),
		DBSSLMode:  getEnvString("DB_SSLMODE", "disable"),

		LoadTimeout: getEnvDuration("LOAD_TIMEOUT", 5*time.Minute),

		ProfileExcludeColumns: []string{"job_description"},

		OTLPCollectorURL: getEnvString("OTLP_COLLECTOR_URL", ""),
	}

	return config, nil
}

// DSN renders the lib/pq connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
