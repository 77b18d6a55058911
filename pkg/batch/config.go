// Package batch loads expression lists for bulk analysis.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one expression to analyze, with an optional display name.
type Entry struct {
	Name string `yaml:"name" json:"name"`
	Expr string `yaml:"expr" json:"expr"`
}

// File represents the structure of expressions.yaml.
type File struct {
	Expressions []Entry `yaml:"expressions" json:"expressions"`
}

// Load reads an expressions file (YAML or JSON) and returns its entries.
// A missing file at the default path is treated as "no expressions".
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read expressions file: %w", err)
	}

	var cfg File
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return cfg.Expressions, nil
}
