package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultPlayerName = "Player"

// Session is the one-off configuration of a game session.
type Session struct {
	Height         int    `yaml:"height" env:"GRIDFIGHT_HEIGHT" envDefault:"5"`
	Width          int    `yaml:"width" env:"GRIDFIGHT_WIDTH" envDefault:"5"`
	PlayerName     string `yaml:"player" env:"GRIDFIGHT_PLAYER" envDefault:"Player"`
	Difficulty     int    `yaml:"difficulty" env:"GRIDFIGHT_DIFFICULTY" envDefault:"1"`
	Seed           int64  `yaml:"seed" env:"GRIDFIGHT_SEED"`
	DifficultyFile string `yaml:"difficulty_file" env:"GRIDFIGHT_DIFFICULTY_FILE"`
	LogLevel       string `yaml:"log_level" env:"GRIDFIGHT_LOG_LEVEL" envDefault:"warn"`
	LogFile        string `yaml:"log_file" env:"GRIDFIGHT_LOG_FILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadSession() (Session, error) {
	var s Session
	if err := ParseEnv(&s); err != nil {
		return Session{}, err
	}
	s.PlayerName = NormalizeName(s.PlayerName)
	return s, nil
}

// NormalizeName collapses whitespace in a player name and title-cases it
// only when it is all lower case; any other casing is kept as typed.
// Blank names fall back to DefaultPlayerName.
func NormalizeName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return DefaultPlayerName
	}
	if cases.Lower(language.Und).String(name) != name {
		return name
	}
	return cases.Title(language.Und).String(name)
}
