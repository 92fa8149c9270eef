// Package config holds the storyweb server settings, read from the
// environment with sensible defaults.
package config

import "os"

type Config struct {
	Addr   string // listen address
	DBPath string // sqlite file for the story archive
	Model  string // chat model used for story generation
	WebDir string // directory with the frontend assets
}

func Load() Config {
	return Config{
		Addr:   getenv("STORYWEB_ADDR", ":8080"),
		DBPath: getenv("STORYWEB_DB", "storyweb.db"),
		Model:  getenv("STORYWEB_MODEL", "gpt-4o-mini"),
		WebDir: getenv("STORYWEB_WEBDIR", "./web"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
