package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-starmap/common"
	"github.com/Carmen-Shannon/oxy-starmap/engine/camera"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
}

func TestParse(t *testing.T) {
	testCases := map[string]struct {
		yaml  string
		check func(t *testing.T, c *Config)
	}{
		"Empty": {
			yaml: "",
			check: func(t *testing.T, c *Config) {
				if c.Window.Width != 1280 || c.Camera.Zoom != 1 || *c.Camera.FlySeconds != -1 {
					t.Errorf("expected defaults, got %+v", c)
				}
			},
		},
		"PartialCamera": {
			yaml: "camera:\n  perspective: true\n  zoom: 4\n  fly_seconds: 0\n",
			check: func(t *testing.T, c *Config) {
				if !c.Camera.Perspective || c.Camera.Zoom != 4 {
					t.Errorf("camera values not applied: %+v", c.Camera)
				}
				if *c.Camera.FlySeconds != 0 {
					t.Errorf("explicit 0 fly_seconds must be kept, got %v", *c.Camera.FlySeconds)
				}
				if c.Camera.FieldOfView != 45 || c.Camera.MaxZoom != 300 {
					t.Errorf("unset camera values should default: %+v", c.Camera)
				}
			},
		},
		"GridOff": {
			yaml: "window:\n  grid: false\n  title: Sol\n",
			check: func(t *testing.T, c *Config) {
				if *c.Window.Grid {
					t.Error("grid should be disabled")
				}
				if c.Window.Title != "Sol" {
					t.Errorf("unexpected title %q", c.Window.Title)
				}
			},
		},
		"VSyncOff": {
			yaml: "window:\n  vsync: false\n",
			check: func(t *testing.T, c *Config) {
				if c.Window.VSyncEnabled() {
					t.Error("vsync should be disabled")
				}
				if !c.Window.GridEnabled() {
					t.Error("grid should keep its default")
				}
			},
		},
		"VSyncDefault": {
			yaml: "window:\n  width: 640\n",
			check: func(t *testing.T, c *Config) {
				if !c.Window.VSyncEnabled() || c.Window.SoftwareRenderer {
					t.Errorf("unexpected window defaults: %+v", c.Window)
				}
			},
		},
		"KeyOverride": {
			yaml: "keys:\n  forward: [up]\n",
			check: func(t *testing.T, c *Config) {
				k, err := c.Keymap()
				if err != nil {
					t.Fatal(err)
				}
				if got := k[camera.ActionForward]; len(got) != 1 || got[0] != common.KeyUp {
					t.Errorf("unexpected forward keys %v", got)
				}
			},
		},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			c, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestParseErrors(t *testing.T) {
	testCases := map[string]struct {
		yaml     string
		contains string
	}{
		"UnknownField":   {yaml: "camera:\n  zooom: 2\n", contains: "parse"},
		"BadYAML":        {yaml: "camera: [", contains: "parse"},
		"NegativeWidth":  {yaml: "window:\n  width: -5\n", contains: "window size"},
		"ZoomOutOfRange": {yaml: "camera:\n  zoom: 1000\n", contains: "outside"},
		"ZoomRange":      {yaml: "camera:\n  min_zoom: 10\n  max_zoom: 5\n  zoom: 7\n", contains: "zoom range"},
		"FieldOfView":    {yaml: "camera:\n  field_of_view: 200\n", contains: "field_of_view"},
		"ZoomStep":       {yaml: "camera:\n  zoom_step: 0.5\n", contains: "zoom_step"},
		"ShortPosition":  {yaml: "camera:\n  position: [1, 2]\n", contains: "position"},
		"ClearColor":     {yaml: "window:\n  clear_color: [1, 0, 0]\n", contains: "clear_color"},
		"FrameLimit":     {yaml: "engine:\n  frame_limit: -1\n", contains: "frame_limit"},
		"UnknownKey":     {yaml: "keys:\n  forward: [hyper]\n", contains: "keys"},
		"UnknownAction":  {yaml: "keys:\n  jump: [space]\n", contains: "keys"},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected error containing %q, got %v", tt.contains, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starmap.yaml")
	if err := os.WriteFile(path, []byte("engine:\n  tick_rate: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Engine.TickRate != 120 {
		t.Errorf("expected tick rate 120, got %v", c.Engine.TickRate)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
