package flight

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-starmap/common"
	"gopkg.in/yaml.v3"
)

// Script is a scripted camera flight replayed against a headless viewer.
type Script struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	TickMs float32 `yaml:"tick_ms"` // simulated tick length
	Steps  []Step  `yaml:"steps"`
}

// Step is a single scripted action. Exactly one field is set.
type Step struct {
	FlyTo       []float32 `yaml:"fly_to"`  // real world x, y, z
	LookAt      []float32 `yaml:"look_at"` // real world x, y, z
	Run         float32   `yaml:"run"`     // milliseconds to advance with no keys held
	Hold        *Hold     `yaml:"hold"`
	Perspective *bool     `yaml:"perspective"`
	Elite       *bool     `yaml:"elite"`
	Zoom        float32   `yaml:"zoom"`
	Scroll      float32   `yaml:"scroll"` // wheel notches
	Cancel      bool      `yaml:"cancel"`
}

// Hold presses keys for a duration, advancing the viewer while they are down.
type Hold struct {
	Keys []string `yaml:"keys"`
	Ms   float32  `yaml:"ms"`
}

// Load reads and validates a flight script file.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - *Script: the parsed script
//   - error: a wrapped read, parse or validation error
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read flight script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a flight script, defaulting the viewport to 800x600 and ticks to 16ms.
func Parse(data []byte) (*Script, error) {
	s := &Script{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("failed to parse flight script: %w", err)
	}

	s.Width = common.Coalesce(s.Width, 800)
	s.Height = common.Coalesce(s.Height, 600)
	s.TickMs = common.Coalesce(s.TickMs, 16)

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flight script: %w", err)
	}
	return s, nil
}

// Validate checks the viewport, tick length and every step.
func (s *Script) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.TickMs <= 0 {
		return fmt.Errorf("tick_ms must be positive, got %v", s.TickMs)
	}
	if len(s.Steps) == 0 {
		return errors.New("no steps")
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	set := 0
	if st.FlyTo != nil {
		set++
		if len(st.FlyTo) != 3 {
			return errors.New("fly_to needs x, y, z")
		}
	}
	if st.LookAt != nil {
		set++
		if len(st.LookAt) != 3 {
			return errors.New("look_at needs x, y, z")
		}
	}
	if st.Run != 0 {
		set++
		if st.Run < 0 {
			return errors.New("run must be positive")
		}
	}
	if st.Hold != nil {
		set++
		if st.Hold.Ms <= 0 {
			return errors.New("hold needs a positive ms")
		}
		if len(st.Hold.Keys) == 0 {
			return errors.New("hold needs keys")
		}
		for _, name := range st.Hold.Keys {
			if _, ok := common.KeyByName(name); !ok {
				return fmt.Errorf("unknown key %q", name)
			}
		}
	}
	if st.Perspective != nil {
		set++
	}
	if st.Elite != nil {
		set++
	}
	if st.Zoom != 0 {
		set++
		if st.Zoom < 0 {
			return errors.New("zoom must be positive")
		}
	}
	if st.Scroll != 0 {
		set++
	}
	if st.Cancel {
		set++
	}

	switch set {
	case 0:
		return errors.New("empty step")
	case 1:
		return nil
	default:
		return errors.New("a step takes exactly one action")
	}
}

// Describe names the step's action for reports.
func (st Step) Describe() string {
	switch {
	case st.FlyTo != nil:
		return fmt.Sprintf("fly_to %v", st.FlyTo)
	case st.LookAt != nil:
		return fmt.Sprintf("look_at %v", st.LookAt)
	case st.Run != 0:
		return fmt.Sprintf("run %vms", st.Run)
	case st.Hold != nil:
		return fmt.Sprintf("hold %v %vms", st.Hold.Keys, st.Hold.Ms)
	case st.Perspective != nil:
		return fmt.Sprintf("perspective %v", *st.Perspective)
	case st.Elite != nil:
		return fmt.Sprintf("elite %v", *st.Elite)
	case st.Zoom != 0:
		return fmt.Sprintf("zoom %v", st.Zoom)
	case st.Scroll != 0:
		return fmt.Sprintf("scroll %v", st.Scroll)
	case st.Cancel:
		return "cancel"
	}
	return ""
}
