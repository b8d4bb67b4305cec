package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds the process-wide defaults: the text token that maps to the
// missing marker in delimited files, the pixels-per-unit scale used when
// rendering charts, and the directory chart files are saved into.
type Config struct {
	MissingToken string
	DPI          int
	OutputDir    string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration, reading .env and the
// environment on first use.
func GetConfig() *Config {
	once.Do(func() {
		// A .env file is optional here, plain environment variables win.
		_ = godotenv.Load()

		config = &Config{
			MissingToken: os.Getenv("DATAPLOT_MISSING_TOKEN"),
			DPI:          100,
			OutputDir:    ".",
		}
		if v, err := strconv.Atoi(os.Getenv("DATAPLOT_DPI")); err == nil && v > 0 {
			config.DPI = v
		}
		if dir := os.Getenv("DATAPLOT_OUTPUT_DIR"); dir != "" {
			config.OutputDir = dir
		}
	})
	return config
}
