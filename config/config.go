package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	BackendURL     string
	ServerPort     int
	SessionHashKey []byte
	CSRFKey        []byte
	Env            string
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	sessionKey, err := loadHexKey("SESSION_HASH_KEY")
	if err != nil {
		return nil, err
	}

	csrfKey, err := loadHexKey("CSRF_KEY")
	if err != nil {
		return nil, err
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	cfg := &Config{
		BackendURL:     backendURL,
		ServerPort:     port,
		SessionHashKey: sessionKey,
		CSRFKey:        csrfKey,
		Env:            env,
	}

	return cfg, nil
}

// loadHexKey читает 32-байтовый секрет в hex-кодировке из переменной окружения.
func loadHexKey(name string) ([]byte, error) {
	keyHex := os.Getenv(name)
	if keyHex == "" {
		return nil, fmt.Errorf("%s environment variable is not set", name)
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("%s must be hex-encoded: %w", name, err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("%s must be 64 hex characters (32 bytes), got %d bytes", name, len(key))
	}
	return key, nil
}
