package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds settings read from GEMCRUSH_* variables. Command-line flags
// take precedence; these only replace the flag defaults.
type Env struct {
	DBPath     string `env:"GEMCRUSH_DB"`
	ConfigPath string `env:"GEMCRUSH_CONFIG"`
	Seed       int64  `env:"GEMCRUSH_SEED" envDefault:"0"`
	FPS        int    `env:"GEMCRUSH_FPS" envDefault:"30"`
	LogLevel   string `env:"GEMCRUSH_LOG_LEVEL" envDefault:"info"`
	LogFile    string `env:"GEMCRUSH_LOG_FILE"`
	Player     string `env:"GEMCRUSH_PLAYER"`
	SSHHost    string `env:"GEMCRUSH_SSH_HOST" envDefault:"0.0.0.0"`
	SSHPort    int    `env:"GEMCRUSH_SSH_PORT" envDefault:"2222"`
}

// LoadEnv reads an optional dotenv file into the process environment and
// parses GEMCRUSH_* variables. A missing dotenv file is not an error.
// Variables already set in the environment win over the file.
func LoadEnv(dotenvPath string) (Env, error) {
	var e Env
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return e, fmt.Errorf("config: load %s: %w", dotenvPath, err)
		}
	}
	if err := ParseEnv(&e); err != nil {
		return e, err
	}
	return e, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
