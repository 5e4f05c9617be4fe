package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads environment variables from the given file when it exists.
// Deployed environments configure the process directly and ship no file.
func LoadEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("error loading env file %s: %v", path, err)
	}
}
