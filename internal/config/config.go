// Package config loads process configuration from .env files and the
// environment, layering binary-directory and working-directory sources.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Port     int
	DataPath string
	LogDir   string
	Verbose  bool
}

// Load loads configuration from .env files (binary directory first, then
// the working directory) and environment variables.
func Load() (*AppConfig, error) {
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("loaded configuration from binary directory")
		}
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("failed to create log directory")
	}

	port, _ := strconv.Atoi(getEnv("PORT", "8000"))
	if port <= 0 {
		port = 8000
	}

	cfg := &AppConfig{
		Port:     port,
		DataPath: dataPath,
		LogDir:   logDir,
		Verbose:  getEnvBool("VERBOSE", false),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
