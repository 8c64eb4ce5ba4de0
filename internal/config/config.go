// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML run configuration. Zero values mean
// "not set"; explicit command-line flags always win over file values.
type Config struct {
	SeqFile       string    `yaml:"seq_file"`
	TreeFile      string    `yaml:"tree_file"`
	Model         string    `yaml:"model"`
	ModelParams   []float64 `yaml:"model_params"`
	GapOpen       float64   `yaml:"gap_open"`
	GapExt        float64   `yaml:"gap_ext"`
	Categories    int       `yaml:"categories"`
	Rounding      string    `yaml:"rounding"`
	OutputMSAFile string    `yaml:"output_msa_file"`
	Output        string    `yaml:"output"`
	Scores        *bool     `yaml:"scores"`
}

// Load reads and decodes a YAML config file. Unknown keys are rejected.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
