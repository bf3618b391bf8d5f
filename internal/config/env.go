package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads .env files so API keys reach the environment before any
// provider is constructed. The working directory's .env wins over the one in
// ~/.autocommit; both are optional.
func LoadEnvFiles() {
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	_ = godotenv.Load(filepath.Join(home, ".autocommit", ".env"))
}
