package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("load yaml %s: %w", path, err)
	}
	return nil
}

// LoadDifficulty reads a difficulty table file such as assets/difficulty.yaml.
func LoadDifficulty(path string) (*DifficultyConfig, error) {
	var dc DifficultyConfig
	if err := loadYAML(path, &dc); err != nil {
		return nil, err
	}
	if len(dc.Tiers) == 0 {
		return nil, fmt.Errorf("load yaml %s: no tiers", path)
	}
	return &dc, nil
}

// LoadSessionFile overlays the values present in a YAML file on s.
func LoadSessionFile(path string, s *Session) error {
	return loadYAML(path, s)
}
