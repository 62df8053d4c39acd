package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
	Match    Match  `yaml:"match"`
}

type Game struct {
	BoardSize     int     `yaml:"board-size" env:"BOARD_SIZE" env-default:"6"`
	PiecesPerType int     `yaml:"pieces-per-type" env:"PIECES_PER_TYPE" env-default:"4"`
	TurnSeconds   float64 `yaml:"turn-seconds" env:"TURN_SECONDS" env-default:"30"`
	Seed          int64   `yaml:"seed" env:"SEED" env-default:"0"`
}

type Match struct {
	Players    int      `yaml:"players" env:"PLAYERS" env-default:"2"`
	Games      int      `yaml:"games" env:"GAMES" env-default:"10"`
	Strategies []string `yaml:"strategies" env:"STRATEGIES" env-default:"minimax,basic"`
	Depth      int      `yaml:"minimax-depth" env:"MINIMAX_DEPTH" env-default:"2"`
	Goroutines int      `yaml:"minimax-goroutines" env:"MINIMAX_GOROUTINES" env-default:"1"`
}

// MustLoad reads the config file at path, falling back to environment
// variables and defaults when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			panic(fmt.Errorf("unable to load config file: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to load config from environment: %w", err))
	}
	return config
}
