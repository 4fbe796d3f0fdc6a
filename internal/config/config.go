package config

import (
	"os"
	"strconv"
)

type Config struct {
	ListenAddr string
	LogLevel   string
	LogFile    string
	SeedDemo   bool
	// RandSeed overrides the id generator seed; 0 means seed from the clock.
	// Set it for reproducible demo ids.
	RandSeed int64
}

func Load() *Config {
	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFile:    getEnv("LOG_FILE", ""),
		SeedDemo:   os.Getenv("SEED_DEMO") == "1",
		RandSeed:   getEnvInt64("RAND_SEED", 0),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	parsed, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return defaultVal
	}
	return parsed
}
