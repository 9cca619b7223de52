package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Carmen-Shannon/oxy-starmap/common"
	"github.com/Carmen-Shannon/oxy-starmap/engine/input"
	"gopkg.in/yaml.v3"
)

// Config is the star map viewer configuration file.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Engine EngineConfig `yaml:"engine"`
	Camera CameraConfig `yaml:"camera"`

	// Keys maps action names to key names. Actions left out keep their default keys.
	Keys map[string][]string `yaml:"keys"`
}

type WindowConfig struct {
	Title      string    `yaml:"title"`
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	VSync      *bool     `yaml:"vsync"`
	ClearColor []float64 `yaml:"clear_color"` // rgba, [0, 1]
	Grid       *bool     `yaml:"grid"`

	// SoftwareRenderer requests a CPU fallback adapter instead of the GPU.
	SoftwareRenderer bool `yaml:"software_renderer"`
}

type EngineConfig struct {
	TickRate   float64 `yaml:"tick_rate"`   // ticks per second
	FrameLimit float64 `yaml:"frame_limit"` // frames per second, 0 = uncapped
	Profiling  bool    `yaml:"profiling"`
}

type CameraConfig struct {
	Perspective bool    `yaml:"perspective"`
	FieldOfView float32 `yaml:"field_of_view"` // degrees
	Elite       bool    `yaml:"elite"`

	Zoom     float32 `yaml:"zoom"`
	MinZoom  float32 `yaml:"min_zoom"`
	MaxZoom  float32 `yaml:"max_zoom"`
	ZoomStep float32 `yaml:"zoom_step"` // zoom multiplier per scroll notch

	// FlySeconds is the duration of fly-to slews: 0 jumps, negative derives it from distance.
	FlySeconds *float32 `yaml:"fly_seconds"`

	Position  []float32 `yaml:"position"`  // real world x, y, z
	Direction []float32 `yaml:"direction"` // pitch, roll, yaw in degrees
}

// Default returns the configuration used when no file is given.
//
// Returns:
//   - *Config: a fully populated configuration
func Default() *Config {
	grid, vsync := true, true
	fly := float32(-1)
	return &Config{
		Window: WindowConfig{
			Title:      "Star Map",
			Width:      1280,
			Height:     720,
			VSync:      &vsync,
			ClearColor: []float64{0, 0, 0, 1},
			Grid:       &grid,
		},
		Engine: EngineConfig{
			TickRate: 60,
		},
		Camera: CameraConfig{
			FieldOfView: 45,
			Zoom:        1,
			MinZoom:     0.01,
			MaxZoom:     300,
			ZoomStep:    1.1,
			FlySeconds:  &fly,
			Position:    []float32{0, 0, 0},
			Direction:   []float32{90, 0, 0},
		},
	}
}

// Load reads a YAML configuration file, fills unset values from Default and validates it.
// Unknown keys are rejected so typos do not silently fall back to defaults.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - *Config: the merged configuration
//   - error: a wrapped read, parse or validation error
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data; see Load.
func Parse(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	c.merge(Default())
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}

// merge fills every zero value of c from d.
func (c *Config) merge(d *Config) {
	c.Window.Title = common.Coalesce(c.Window.Title, d.Window.Title)
	c.Window.Width = common.Coalesce(c.Window.Width, d.Window.Width)
	c.Window.Height = common.Coalesce(c.Window.Height, d.Window.Height)
	c.Window.Grid = common.Coalesce(c.Window.Grid, d.Window.Grid)
	c.Window.VSync = common.Coalesce(c.Window.VSync, d.Window.VSync)
	if len(c.Window.ClearColor) == 0 {
		c.Window.ClearColor = d.Window.ClearColor
	}

	c.Engine.TickRate = common.Coalesce(c.Engine.TickRate, d.Engine.TickRate)

	c.Camera.FieldOfView = common.Coalesce(c.Camera.FieldOfView, d.Camera.FieldOfView)
	c.Camera.Zoom = common.Coalesce(c.Camera.Zoom, d.Camera.Zoom)
	c.Camera.MinZoom = common.Coalesce(c.Camera.MinZoom, d.Camera.MinZoom)
	c.Camera.MaxZoom = common.Coalesce(c.Camera.MaxZoom, d.Camera.MaxZoom)
	c.Camera.ZoomStep = common.Coalesce(c.Camera.ZoomStep, d.Camera.ZoomStep)
	c.Camera.FlySeconds = common.Coalesce(c.Camera.FlySeconds, d.Camera.FlySeconds)
	if len(c.Camera.Position) == 0 {
		c.Camera.Position = d.Camera.Position
	}
	if len(c.Camera.Direction) == 0 {
		c.Camera.Direction = d.Camera.Direction
	}
}

// VSyncEnabled reports whether presentation waits for vertical blank; unset means yes.
func (w WindowConfig) VSyncEnabled() bool {
	return w.VSync == nil || *w.VSync
}

// GridEnabled reports whether the galactic plane grid is drawn; unset means yes.
func (w WindowConfig) GridEnabled() bool {
	return w.Grid == nil || *w.Grid
}

// Validate checks ranges and resolves the key bindings.
//
// Returns:
//   - error: the first problem found, or nil
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case len(c.Window.ClearColor) != 4:
		return fmt.Errorf("clear_color needs 4 components, got %d", len(c.Window.ClearColor))
	case c.Engine.TickRate <= 0:
		return fmt.Errorf("tick_rate %v must be positive", c.Engine.TickRate)
	case c.Engine.FrameLimit < 0:
		return fmt.Errorf("frame_limit %v must not be negative", c.Engine.FrameLimit)
	case c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180:
		return fmt.Errorf("field_of_view %v must be in (0, 180)", c.Camera.FieldOfView)
	case c.Camera.MinZoom <= 0 || c.Camera.MinZoom > c.Camera.MaxZoom:
		return fmt.Errorf("zoom range [%v, %v] is invalid", c.Camera.MinZoom, c.Camera.MaxZoom)
	case c.Camera.Zoom < c.Camera.MinZoom || c.Camera.Zoom > c.Camera.MaxZoom:
		return fmt.Errorf("zoom %v is outside [%v, %v]", c.Camera.Zoom, c.Camera.MinZoom, c.Camera.MaxZoom)
	case c.Camera.ZoomStep <= 1:
		return fmt.Errorf("zoom_step %v must be greater than 1", c.Camera.ZoomStep)
	case len(c.Camera.Position) != 3:
		return fmt.Errorf("position needs 3 components, got %d", len(c.Camera.Position))
	case len(c.Camera.Direction) != 3:
		return fmt.Errorf("direction needs 3 components, got %d", len(c.Camera.Direction))
	}

	if _, err := c.Keymap(); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	return nil
}

// Keymap resolves the configured key bindings over the defaults.
//
// Returns:
//   - input.Keymap: the bindings
//   - error: an error naming an unknown action or key
func (c *Config) Keymap() (input.Keymap, error) {
	return input.ParseKeymap(c.Keys)
}
