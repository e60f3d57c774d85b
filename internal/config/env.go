package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	apperrors "github.com/alephdao/transcribe-audio-to-text-extract/internal/app/errors"
)

// Config carries the per-invocation settings for the transcription pipeline.
// It is assembled once at startup and read-only afterwards.
type Config struct {
	APIKey    string
	ModelID   string
	OutputDir string
	Verbose   bool
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error - the variables might be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return apperrors.Wrapf(apperrors.ErrConfiguration, "error loading %s file: %v", envPath, err)
			}
			break
		}
	}

	return nil
}

// RequireAPIKey retrieves the Gemini API key from the environment.
// Implements fail-fast: it is called before any file or network I/O so a
// missing credential aborts the run with a configuration error.
func RequireAPIKey() (string, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return "", apperrors.Wrap(apperrors.ErrConfiguration,
			"GEMINI_API_KEY not found in environment variables - set it in the environment or a .env file")
	}
	return apiKey, nil
}

// InitializeConfig loads the environment and assembles the pipeline
// configuration. This is the main entry point for configuration loading.
func InitializeConfig(modelID string, outputDir string, verbose bool) (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	apiKey, err := RequireAPIKey()
	if err != nil {
		return nil, err
	}

	return &Config{
		APIKey:    apiKey,
		ModelID:   modelID,
		OutputDir: outputDir,
		Verbose:   verbose,
	}, nil
}
