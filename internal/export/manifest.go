package export

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const ManifestFileName = "manifest.yaml"

// Manifest describes one generation run next to the files it produced.
type Manifest struct {
	RunID         string           `yaml:"run_id"`
	Variant       string           `yaml:"variant"`
	Seed          uint64           `yaml:"seed"`
	ReferenceDate string           `yaml:"reference_date"`
	GeneratedAt   string           `yaml:"generated_at"`
	Files         []ManifestFile   `yaml:"files"`
	Defects       []ManifestDefect `yaml:"defects,omitempty"`
}

type ManifestFile struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
	Rows    int      `yaml:"rows"`
}

type ManifestDefect struct {
	Category string  `yaml:"category"`
	Rate     float64 `yaml:"rate"`
	Injected int     `yaml:"injected"`
}

func (e *Exporter) WriteManifest(m Manifest) (string, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}

	filePath := filepath.Join(e.dir, ManifestFileName)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filePath, nil
}

func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &m, nil
}
