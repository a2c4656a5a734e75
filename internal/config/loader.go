package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHolewall loads and validates the game configuration.
// Search order: customPath -> ~/.holewall/configs/holewall.yaml -> ./configs/holewall.yaml -> embedded default
func LoadHolewall(customPath string) (HolewallConfig, error) {
	cfg, err := loadHolewall(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func loadHolewall(customPath string) (HolewallConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HolewallConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory. A missing
	// file moves on to the next location; an unreadable or broken one fails.
	for _, path := range []string{
		userConfigPath("holewall.yaml"),
		filepath.Join("configs", "holewall.yaml"),
	} {
		if path == "" {
			continue
		}
		cfg, found, err := loadSearchFile(path)
		if err != nil {
			return cfg, err
		}
		if found {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultHolewallYAML)
	if err != nil {
		return DefaultHolewallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadSearchFile reads one search-path candidate. found is false only when
// the file does not exist.
func loadSearchFile(path string) (HolewallConfig, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return HolewallConfig{}, false, nil
	}
	if err != nil {
		return HolewallConfig{}, true, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, true, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, true, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// the keys it changes.
func Parse(data []byte) (HolewallConfig, error) {
	cfg := DefaultHolewallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg HolewallConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".holewall", "configs", filename)
}
