package config

import (
    "fmt"
    "os"
    "strconv"
    "strings"
    "time"
    "github.com/joho/godotenv"
)

type Config struct {
    Port            string
    DatabaseURL     string
    AllowedOrigins  []string
    RouteCacheTTL   time.Duration
    ConnectAttempts int
}

// Load reads configuration from .env (if present) and the environment.
func Load() *Config {
    // Missing .env is fine; containers set the environment directly.
    _ = godotenv.Load()

    cfg := &Config{
        Port:            getEnvWithDefault("PORT", "8080"),
        DatabaseURL:     os.Getenv("DATABASE_URL"),
        RouteCacheTTL:   time.Duration(getEnvAsInt("ROUTE_CACHE_TTL_SEC", 30)) * time.Second,
        ConnectAttempts: getEnvAsInt("DB_CONNECT_ATTEMPTS", 5),
    }

    if cfg.DatabaseURL == "" {
        cfg.DatabaseURL = postgresConnString()
    }

    if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
        for _, origin := range strings.Split(origins, ",") {
            cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimSpace(origin))
        }
    } else {
        cfg.AllowedOrigins = []string{
            "http://localhost:3000",
            "http://localhost:5173",
            "http://127.0.0.1:3000",
            "http://127.0.0.1:5173",
        }
    }

    return cfg
}

func postgresConnString() string {
    host := getEnvWithDefault("DB_HOST", "localhost")
    port := getEnvWithDefault("DB_PORT", "5432")
    user := getEnvWithDefault("DB_USER", "postgres")
    password := os.Getenv("DB_PASSWORD")
    dbname := getEnvWithDefault("DB_NAME", "sri_lanka_bus_db")
    sslmode := getEnvWithDefault("DB_SSL_MODE", "disable")

    return fmt.Sprintf(
        "host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
        host, port, user, password, dbname, sslmode)
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
    if value := os.Getenv(key); value != "" {
        if intValue, err := strconv.Atoi(value); err == nil {
            return intValue
        }
    }
    return defaultValue
}
