package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerPort       string
	DefaultMockType  string
	DBPath           string
	ChromaHost       string
	ChromaPort       string
	ChromaCollection string
	ContentsFile     string
	StreamIntervalMs int
}

var cfg *Config

func Load() *Config {
	cfg = &Config{
		ServerPort:       getEnv("SERVER_PORT", "5001"),
		DefaultMockType:  getEnv("MOCK_TYPE", "random"),
		DBPath:           getEnv("DB_PATH", "./data/mockai.db"),
		ChromaHost:       getEnv("CHROMADB_HOST", "localhost"),
		ChromaPort:       getEnv("CHROMADB_PORT", "8000"),
		ChromaCollection: getEnv("CHROMA_COLLECTION", "jose_content"),
		ContentsFile:     getEnv("CONTENTS_FILE", ""),
		StreamIntervalMs: getEnvInt("STREAM_INTERVAL_MS", 100),
	}
	return cfg
}

func Get() *Config {
	return cfg
}

// ChromaURL builds the base URL of the similarity-search service.
func (c *Config) ChromaURL() string {
	return "http://" + c.ChromaHost + ":" + c.ChromaPort
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
