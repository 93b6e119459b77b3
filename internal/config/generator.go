// Package config loads the dataset generation parameters.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smartpave-data/smartpave/internal/synth"
)

// GeneratorConfig is the JSON configuration for a generation run. All fields
// are optional; fields omitted from the file keep their defaults, so partial
// configs are safe.
type GeneratorConfig struct {
	Seed            *uint64  `json:"seed,omitempty"`
	RoadCount       *int     `json:"road_count,omitempty"`
	SegmentMean     *float64 `json:"segment_mean,omitempty"`
	CenterLatitude  *float64 `json:"center_latitude,omitempty"`
	CenterLongitude *float64 `json:"center_longitude,omitempty"`
	StartYear       *int     `json:"start_year,omitempty"`
	EndYear         *int     `json:"end_year,omitempty"`
}

// LoadGeneratorConfig loads a GeneratorConfig from a JSON file. The file must
// have a .json extension and stay under the size cap.
func LoadGeneratorConfig(path string) (*GeneratorConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &GeneratorConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c *GeneratorConfig) Validate() error {
	if c.RoadCount != nil && *c.RoadCount <= 0 {
		return fmt.Errorf("road_count must be positive, got %d", *c.RoadCount)
	}
	if c.SegmentMean != nil && *c.SegmentMean <= 0 {
		return fmt.Errorf("segment_mean must be positive, got %f", *c.SegmentMean)
	}
	if c.StartYear != nil && c.EndYear != nil && *c.EndYear < *c.StartYear {
		return fmt.Errorf("end_year %d precedes start_year %d", *c.EndYear, *c.StartYear)
	}
	return nil
}

// Params resolves the config against synth.DefaultParams, overriding only the
// fields the file sets.
func (c *GeneratorConfig) Params() synth.Params {
	p := synth.DefaultParams()
	if c.Seed != nil {
		p.Seed = *c.Seed
	}
	if c.RoadCount != nil {
		p.RoadCount = *c.RoadCount
	}
	if c.SegmentMean != nil {
		p.SegmentMean = *c.SegmentMean
	}
	if c.CenterLatitude != nil {
		p.CenterLatitude = *c.CenterLatitude
	}
	if c.CenterLongitude != nil {
		p.CenterLongitude = *c.CenterLongitude
	}
	if c.StartYear != nil {
		p.StartYear = *c.StartYear
	}
	if c.EndYear != nil {
		p.EndYear = *c.EndYear
	}
	return p
}
