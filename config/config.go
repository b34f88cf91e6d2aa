package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/epeers/sedolchecker/internal/sedol"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Port             string
	LogLevel         log.Level
	GinMode          string
	CharacterWeights []int
	ShutdownTimeout  time.Duration
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first; variables already set
// in the shell take precedence over it.
func Load() (*Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", levelStr, err)
	}

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = gin.ReleaseMode
	}
	switch ginMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q: must be %s, %s or %s",
			ginMode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}

	weights := sedol.DefaultCharacterWeights()
	if raw := os.Getenv("SEDOL_WEIGHTS"); raw != "" {
		weights, err = parseWeights(raw)
		if err != nil {
			return nil, err
		}
	}

	shutdownTimeout := 5 * time.Second
	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		shutdownTimeout, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", raw, err)
		}
	}

	return &Config{
		Port:             port,
		LogLevel:         level,
		GinMode:          ginMode,
		CharacterWeights: weights,
		ShutdownTimeout:  shutdownTimeout,
	}, nil
}

// parseWeights parses a comma-separated list of exactly sedol.ExpectedSedolLength integers
func parseWeights(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != sedol.ExpectedSedolLength {
		return nil, fmt.Errorf("SEDOL_WEIGHTS must have %d entries, got %d", sedol.ExpectedSedolLength, len(parts))
	}

	weights := make([]int, 0, len(parts))
	for i, p := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("SEDOL_WEIGHTS entry %d: invalid integer %q", i+1, strings.TrimSpace(p))
		}
		weights = append(weights, w)
	}
	return weights, nil
}
