package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         string        `yaml:"port"`
	MongoURI     string        `yaml:"mongodb_uri"`
	DatabaseName string        `yaml:"database_name"`
	Timeout      time.Duration `yaml:"request_timeout"`
	Origins      []string      `yaml:"cors_origins"`
	LogLevel     string        `yaml:"log_level"`
	LogPretty    bool          `yaml:"log_pretty"`
	StoreBackend string        `yaml:"store_backend"` // "mongo" or "memory"
}

func defaults() Config {
	return Config{
		Port:         "3000",
		MongoURI:     "mongodb://localhost:27017",
		DatabaseName: "academicos",
		Timeout:      10 * time.Second,
		Origins:      []string{"*"},
		LogLevel:     "info",
		LogPretty:    true,
		StoreBackend: "mongo",
	}
}

// LoadConfig builds the configuration from defaults, then the YAML file named
// by CONFIG_FILE (config.yaml when unset, ignored when missing), then the
// environment. A .env file in the working directory is loaded first.
func LoadConfig() (Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := defaults()
	if err := loadFile(getEnv("CONFIG_FILE", "config.yaml"), &cfg); err != nil {
		return Config{}, err
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.MongoURI = getEnv("MONGODB_URI", cfg.MongoURI)
	cfg.DatabaseName = getEnv("DATABASE_NAME", cfg.DatabaseName)
	cfg.Timeout = getEnvDuration("REQUEST_TIMEOUT", cfg.Timeout)
	cfg.Origins = getEnvList("CORS_ORIGINS", cfg.Origins)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogPretty = getEnvBool("LOG_PRETTY", cfg.LogPretty)
	cfg.StoreBackend = strings.ToLower(getEnv("STORE_BACKEND", cfg.StoreBackend))

	if cfg.DatabaseName == "" {
		return Config{}, fmt.Errorf("invalid configuration: database name is required")
	}
	if cfg.StoreBackend != "mongo" && cfg.StoreBackend != "memory" {
		return Config{}, fmt.Errorf("invalid configuration: unknown store backend %q", cfg.StoreBackend)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
