package config

import "os"

// GetEnv returns the value of the named environment variable, falling back
// to fallback when the variable is unset or empty. Standalone commands use
// it directly instead of pulling in the full viper config.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
