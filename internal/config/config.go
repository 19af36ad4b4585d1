package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`

	// booleans must default to false, cleanenv applies env-default to every zero field
	NoColor   bool `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
	NoPruning bool `yaml:"no-pruning" env:"TICTACTOE_NO_PRUNING"`
	ShowStats bool `yaml:"show-stats" env:"TICTACTOE_SHOW_STATS"`
}

// MustLoad - load all configurations in config.yml file, falls back to the environment when the file is missing.
func MustLoad(path string) *Config {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return MustLoadEnv()
	}

	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// MustLoadEnv - load configuration from environment variables only.
func MustLoadEnv() *Config {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to load config from environment: %w", err))
	}

	return config
}
