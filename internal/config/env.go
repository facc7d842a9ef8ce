package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/sitecfg/internal/logfields"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads the first readable .env file. godotenv never overrides
// variables already present in the process environment.
func loadEnvFile() error {
	for _, path := range envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		slog.Info("Loaded environment variables", logfields.Path(path))
		return nil
	}
	return fmt.Errorf("no .env file found")
}
