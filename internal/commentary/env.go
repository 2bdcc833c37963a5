package commentary

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// APIKeyEnvVars are checked in order.
var APIKeyEnvVars = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}

// APIKeyFromEnv loads the given .env files (missing files are skipped; no
// paths means ./.env) and returns the first API key found in the environment.
// Variables already set take precedence over .env values.
func APIKeyFromEnv(dotenv ...string) (string, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, path := range dotenv {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("commentary: load %s: %w", path, err)
		}
	}

	for _, name := range APIKeyEnvVars {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}
	return "", ErrNoAPIKey
}
