package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartpave-data/smartpave/internal/synth"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}
	return path
}

func TestLoadGeneratorConfig_Partial(t *testing.T) {
	path := writeConfig(t, "gen.json", `{"seed": 7, "road_count": 25}`)

	cfg, err := LoadGeneratorConfig(path)
	if err != nil {
		t.Fatalf("LoadGeneratorConfig failed: %v", err)
	}

	p := cfg.Params()
	if p.Seed != 7 {
		t.Errorf("seed = %d, want 7", p.Seed)
	}
	if p.RoadCount != 25 {
		t.Errorf("road count = %d, want 25", p.RoadCount)
	}

	// Unset fields keep defaults.
	defaults := synth.DefaultParams()
	if p.SegmentMean != defaults.SegmentMean {
		t.Errorf("segment mean = %f, want default %f", p.SegmentMean, defaults.SegmentMean)
	}
	if p.StartYear != defaults.StartYear || p.EndYear != defaults.EndYear {
		t.Errorf("year range = %d-%d, want default %d-%d",
			p.StartYear, p.EndYear, defaults.StartYear, defaults.EndYear)
	}
}

func TestLoadGeneratorConfig_Empty(t *testing.T) {
	path := writeConfig(t, "gen.json", `{}`)

	cfg, err := LoadGeneratorConfig(path)
	if err != nil {
		t.Fatalf("LoadGeneratorConfig failed: %v", err)
	}
	if p := cfg.Params(); p != synth.DefaultParams() {
		t.Errorf("empty config params = %+v, want defaults %+v", p, synth.DefaultParams())
	}
}

func TestLoadGeneratorConfig_RejectsExtension(t *testing.T) {
	path := writeConfig(t, "gen.yaml", `{}`)
	if _, err := LoadGeneratorConfig(path); err == nil {
		t.Error("expected error for non-json extension")
	}
}

func TestLoadGeneratorConfig_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"zero roads", `{"road_count": 0}`},
		{"negative segment mean", `{"segment_mean": -3}`},
		{"inverted years", `{"start_year": 2024, "end_year": 2020}`},
		{"malformed json", `{"road_count": `},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeConfig(t, "gen.json", c.content)
			if _, err := LoadGeneratorConfig(path); err == nil {
				t.Errorf("expected error for %s", c.name)
			}
		})
	}
}

func TestLoadGeneratorConfig_Missing(t *testing.T) {
	if _, err := LoadGeneratorConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
