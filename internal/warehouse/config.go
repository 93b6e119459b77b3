// Package warehouse builds and executes the one-shot warehouse setup: the
// database, schema, stage, table and view DDL the analysis environment needs.
package warehouse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the warehouse settings read from the YAML settings document.
type Config struct {
	Database           string `yaml:"database"`
	Schema             string `yaml:"schema"`
	WarehouseSize      string `yaml:"warehouse_size"`
	RawDataStage       string `yaml:"raw_data_stage"`
	ProcessedDataStage string `yaml:"processed_data_stage"`
	ModelsStage        string `yaml:"models_stage"`
}

// LoadConfig reads and validates a warehouse settings file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read warehouse config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse warehouse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every required setting is present.
func (c *Config) Validate() error {
	required := map[string]string{
		"database":             c.Database,
		"schema":               c.Schema,
		"raw_data_stage":       c.RawDataStage,
		"processed_data_stage": c.ProcessedDataStage,
		"models_stage":         c.ModelsStage,
	}
	for key, value := range required {
		if value == "" {
			return fmt.Errorf("warehouse config missing required field %q", key)
		}
	}
	return nil
}
