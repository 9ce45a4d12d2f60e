package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in each search location.
const FileName = "desktop.yaml"

// Load reads the desktop configuration.
// Search order: customPath -> ~/.retro-desk/desktop.yaml -> ./configs/desktop.yaml -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error; the
// other locations are skipped when missing or broken.
func Load(customPath string) (DesktopConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DesktopConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DesktopConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultDesktopYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// Parse decodes desktop.yaml content and fills unset platform values.
func Parse(data []byte) (DesktopConfig, error) {
	var cfg DesktopConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DesktopConfig{}, err
	}
	return cfg.withDefaults(), nil
}

// Marshal encodes cfg back to YAML.
func Marshal(cfg DesktopConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns ~/.retro-desk/desktop.yaml, or "" without a home dir.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".retro-desk", FileName)
}
