package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
)

// FileNames are the config files Find looks for, in order of preference.
// JSON is a subset of YAML, so all of them are read the same way.
var FileNames = []string{
	".commitlintrc.yml",
	".commitlintrc.yaml",
	".commitlintrc.json",
}

// Load reads the config file at p.
func Load(p string) (*Config, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", p, err)
	}
	return cfg, nil
}

// Find looks for a config file in dir and each of its parents. It returns a
// nil Config if none was found.
func Find(dir string) (*Config, string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", err
	}

	for {
		for _, name := range FileNames {
			candPath := filepath.Join(dir, name)
			cfg, err := Load(candPath)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				return nil, "", err
			}
			return cfg, candPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil, "", nil
}
