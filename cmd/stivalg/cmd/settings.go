package cmd

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// settings is the CLI-local configuration file (~/.stivalg.yml by
// default), distinct from the core Params JSON file: it records where
// this machine keeps its atlases and where it writes output tracks, the
// way the teacher's recast.yml records local build settings.
type settings struct {
	AtlasDir  string `yaml:"atlas_dir"`
	OutputDir string `yaml:"output_dir"`
}

func defaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".stivalg.yml"), nil
}

func defaultSettings() settings {
	return settings{AtlasDir: ".", OutputDir: "."}
}

func loadSettings(path string) (settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultSettings(), nil
	}
	if err != nil {
		return settings{}, err
	}
	var s settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return settings{}, err
	}
	return s, nil
}

func saveSettings(path string, s settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
