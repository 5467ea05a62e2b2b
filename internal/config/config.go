package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
	Static StaticConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Environment  string
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	PingTimeout    time.Duration
}

type AuthConfig struct {
	SecretKey string
	TokenTTL  time.Duration
}

type StaticConfig struct {
	Dir string
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Host:         getEnv("HOST", ""),
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
			Environment:  getEnv("ENVIRONMENT", "development"),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGO_DB", "task"),
			ConnectTimeout: getEnvAsDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
			PingTimeout:    getEnvAsDuration("MONGO_PING_TIMEOUT", 5*time.Second),
		},
		Auth: AuthConfig{
			SecretKey: getEnv("SECRET_KEY", "dev-secret-do-not-use"),
			TokenTTL:  getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		},
		Static: StaticConfig{
			Dir: getEnv("STATIC_DIR", "./web"),
		},
	}

	if config.Server.Environment == "production" {
		if os.Getenv("MONGO_URI") == "" {
			return nil, fmt.Errorf("MONGO_URI is required in production")
		}
		if os.Getenv("SECRET_KEY") == "" {
			return nil, fmt.Errorf("SECRET_KEY must be set in production")
		}
	}

	return config, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
