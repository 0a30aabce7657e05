package config

import (
	"os"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
)

// envFiles are read in order; values already present in the process
// environment always win.
var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads the env files that exist and returns their names.
func loadEnvFiles() ([]string, error) {
	var loaded []string
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return loaded, errors.WrapError(err, errors.CategoryConfig, "failed to load env file").
				WithContext("file", name).
				Build()
		}
		loaded = append(loaded, name)
	}
	return loaded, nil
}
