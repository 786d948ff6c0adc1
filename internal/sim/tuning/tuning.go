package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	ProtocolVersion string `yaml:"protocol_version"`

	ViewRadius      int `yaml:"view_radius"`       // max half-extent of a region query
	AutosaveSeconds int `yaml:"autosave_seconds"`  // 0 disables autosave
	MaxPlacedTotal  int `yaml:"max_placed_total"`  // overlay size cap, 0 = unlimited

	RateLimits RateLimits `yaml:"rate_limits"`
}

type RateLimits struct {
	PlaceWindowSeconds int `yaml:"place_window_seconds"`
	PlaceMax           int `yaml:"place_max"`
}

func Default() Tuning {
	return Tuning{
		ProtocolVersion: "1.0",
		ViewRadius:      48,
		AutosaveSeconds: 60,
		MaxPlacedTotal:  0,
		RateLimits: RateLimits{
			PlaceWindowSeconds: 10,
			PlaceMax:           40,
		},
	}
}

func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if t.ViewRadius <= 0 {
		t.ViewRadius = Default().ViewRadius
	}
	return t, nil
}
