package gcview

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gekko3d/gcview/core"
)

// Action is a keyboard-driven view command.
type Action string

const (
	ActionLayerUp   Action = "layer_up"
	ActionLayerDown Action = "layer_down"
	ActionZoomIn    Action = "zoom_in"
	ActionZoomOut   Action = "zoom_out"
	ActionFit       Action = "fit"
	ActionReset     Action = "reset"
)

var allActions = []Action{ActionLayerUp, ActionLayerDown, ActionZoomIn, ActionZoomOut, ActionFit, ActionReset}

type BuildVolumeConfig struct {
	Width   float64 `yaml:"width"`
	Depth   float64 `yaml:"depth"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	OffsetZ float64 `yaml:"offset_z"`
}

func (b BuildVolumeConfig) Volume() core.BuildVolume {
	return core.BuildVolume{
		Width: b.Width, Depth: b.Depth, Height: b.Height,
		OffsetX: b.OffsetX, OffsetY: b.OffsetY, OffsetZ: b.OffsetZ,
	}
}

// Config holds the recognized viewer settings. Zero values are filled
// from DefaultConfig when a file is loaded.
type Config struct {
	Projection        string              `yaml:"projection"`
	BuildVolume       BuildVolumeConfig   `yaml:"build_volume"`
	BallRadiusDivisor float64             `yaml:"ball_radius_divisor"`
	WheelZoom         float64             `yaml:"wheel_zoom"`
	KeyZoom           float64             `yaml:"key_zoom"`
	KeyZoomFine       float64             `yaml:"key_zoom_fine"`
	ResetFill         float64             `yaml:"reset_fill"`
	ZoomModifier      string              `yaml:"zoom_modifier"`
	FineModifier      string              `yaml:"fine_modifier"`
	Keys              map[Action][]string `yaml:"keys"`
	Debug             bool                `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Projection: core.Orthographic.String(),
		BuildVolume: BuildVolumeConfig{
			Width:  200,
			Depth:  200,
			Height: 100,
		},
		BallRadiusDivisor: core.DefaultBallRadiusDivisor,
		WheelZoom:         1.05,
		KeyZoom:           1.1,
		KeyZoomFine:       1.05,
		ResetFill:         core.DefaultFill,
		ZoomModifier:      "shift",
		FineModifier:      "ctrl",
		Keys: map[Action][]string{
			ActionLayerUp:   {"u", "up"},
			ActionLayerDown: {"d", "down"},
			ActionZoomIn:    {"pagedown", "kp_plus", "right", "equal"},
			ActionZoomOut:   {"pageup", "kp_minus", "left", "minus"},
			ActionFit:       {"f"},
			ActionReset:     {"r"},
		},
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates it.
// Actions missing from the file's keys section keep their default keys.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	defaults := cfg.Keys
	cfg.Keys = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Keys == nil {
		cfg.Keys = make(map[Action][]string)
	}
	for a, keys := range defaults {
		if _, ok := cfg.Keys[a]; !ok {
			cfg.Keys[a] = keys
		}
	}
	if _, err := cfg.controls(); err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem in the configuration.
func (c Config) Validate() error {
	_, err := c.controls()
	return err
}

// controls is Config resolved into typed values.
type controls struct {
	mode         core.ProjectionMode
	volume       core.BuildVolume
	ballDivisor  float64
	wheelZoom    float64
	keyZoom      float64
	keyZoomFine  float64
	resetFill    float64
	zoomModifier Modifier
	fineModifier Modifier
	bindings     map[Key][]Action
}

func (c Config) controls() (controls, error) {
	var errs []error
	out := controls{
		ballDivisor: c.BallRadiusDivisor,
		wheelZoom:   c.WheelZoom,
		keyZoom:     c.KeyZoom,
		keyZoomFine: c.KeyZoomFine,
		resetFill:   c.ResetFill,
		volume:      c.BuildVolume.Volume(),
		bindings:    make(map[Key][]Action),
	}

	mode, err := core.ParseProjectionMode(c.Projection)
	if err != nil {
		errs = append(errs, err)
	}
	out.mode = mode

	positive := map[string]float64{
		"ball_radius_divisor": c.BallRadiusDivisor,
		"wheel_zoom":          c.WheelZoom,
		"key_zoom":            c.KeyZoom,
		"key_zoom_fine":       c.KeyZoomFine,
		"reset_fill":          c.ResetFill,
		"build_volume.width":  c.BuildVolume.Width,
		"build_volume.depth":  c.BuildVolume.Depth,
	}
	names := make([]string, 0, len(positive))
	for n := range positive {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if !(positive[n] > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", n, positive[n]))
		}
	}

	if out.zoomModifier, err = ParseModifier(c.ZoomModifier); err != nil {
		errs = append(errs, fmt.Errorf("zoom_modifier: %w", err))
	}
	if out.fineModifier, err = ParseModifier(c.FineModifier); err != nil {
		errs = append(errs, fmt.Errorf("fine_modifier: %w", err))
	}

	known := make(map[Action]bool, len(allActions))
	for _, a := range allActions {
		known[a] = true
	}
	for _, a := range allActions {
		for _, name := range c.Keys[a] {
			k, err := ParseKey(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("keys.%s: %w", a, err))
				continue
			}
			out.bindings[k] = append(out.bindings[k], a)
		}
	}
	for a := range c.Keys {
		if !known[a] {
			errs = append(errs, fmt.Errorf("keys: unknown action %q", a))
		}
	}

	return out, errors.Join(errs...)
}
