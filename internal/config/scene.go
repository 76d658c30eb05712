package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Gate names accepted in scene files.
const (
	GateNotEmpty = "not-empty"
	GateReserve  = "reserve"
)

var ErrUnsupportedFormat = errors.New("unsupported scene format")

// Scene describes tanks, pipes and timing. It is read from TOML or YAML.
type Scene struct {
	Title          string     `toml:"title" yaml:"title"`
	FlowRate       float64    `toml:"flow_rate" yaml:"flow_rate"`
	TickIntervalMS int        `toml:"tick_interval_ms" yaml:"tick_interval_ms"`
	Tanks          []TankSpec `toml:"tank" yaml:"tanks"`
	Pipes          []PipeSpec `toml:"pipe" yaml:"pipes"`
}

type TankSpec struct {
	Name     string  `toml:"name" yaml:"name"`
	X        float64 `toml:"x" yaml:"x"`
	Y        float64 `toml:"y" yaml:"y"`
	Width    float64 `toml:"width" yaml:"width"`
	Height   float64 `toml:"height" yaml:"height"`
	Capacity float64 `toml:"capacity" yaml:"capacity"`
	Initial  float64 `toml:"initial" yaml:"initial"`
	Color    string  `toml:"color" yaml:"color"` // hex, e.g. "#0078ff"
}

// PipeSpec joins two tanks by name. Order matters: pipes are evaluated in
// the order they appear.
type PipeSpec struct {
	From   string `toml:"from" yaml:"from"`
	To     string `toml:"to" yaml:"to"`
	Gate   string `toml:"gate" yaml:"gate"`
	Heated bool   `toml:"heated" yaml:"heated"`
}

// Default is the three-stage cascade: two full feed tanks drain into a
// mixing tank, which drains through a heated pipe into the last tank.
func Default() Scene {
	sc := Scene{
		Title:          WindowTitle,
		FlowRate:       0.8,
		TickIntervalMS: 20,
		Tanks: []TankSpec{
			{Name: "Zbiornik 1", X: 50, Y: 50, Capacity: 100, Initial: 100},
			{Name: "Zbiornik 2", X: 350, Y: 200, Capacity: 100},
			{Name: "Zbiornik 3", X: 350, Y: 450, Capacity: 100, Color: "#ff6400"},
			{Name: "Zbiornik 1.5", X: 650, Y: 50, Capacity: 100, Initial: 100},
		},
		Pipes: []PipeSpec{
			{From: "Zbiornik 1", To: "Zbiornik 2", Gate: GateNotEmpty},
			{From: "Zbiornik 1.5", To: "Zbiornik 2", Gate: GateNotEmpty},
			{From: "Zbiornik 2", To: "Zbiornik 3", Gate: GateReserve, Heated: true},
		},
	}
	sc.applyDefaults()
	return sc
}

// Load reads a scene file, picking the decoder from the extension.
// Missing fields take their defaults.
func Load(path string) (Scene, error) {
	var decode func([]byte, any) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		decode = toml.Unmarshal
	case ".yaml", ".yml":
		decode = yaml.Unmarshal
	default:
		return Scene{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	var sc Scene
	if err := decode(data, &sc); err != nil {
		return Scene{}, fmt.Errorf("decode %s: %w", path, err)
	}
	sc.applyDefaults()
	if err := sc.Validate(); err != nil {
		return Scene{}, fmt.Errorf("invalid scene %s: %w", path, err)
	}
	return sc, nil
}

func (s *Scene) applyDefaults() {
	if s.Title == "" {
		s.Title = WindowTitle
	}
	if s.FlowRate == 0 {
		s.FlowRate = 0.8
	}
	if s.TickIntervalMS == 0 {
		s.TickIntervalMS = 20
	}
	for i := range s.Tanks {
		t := &s.Tanks[i]
		if t.Width == 0 {
			t.Width = TankWidth
		}
		if t.Height == 0 {
			t.Height = TankHeight
		}
		if t.Capacity == 0 {
			t.Capacity = 100
		}
	}
	for i := range s.Pipes {
		if s.Pipes[i].Gate == "" {
			s.Pipes[i].Gate = GateNotEmpty
		}
	}
}

// Validate reports every problem in the scene at once.
func (s Scene) Validate() error {
	var errs []error
	if !finite(s.FlowRate) {
		errs = append(errs, fmt.Errorf("flow_rate %v is not a finite number", s.FlowRate))
	} else if s.FlowRate < 0 {
		errs = append(errs, fmt.Errorf("flow_rate %v is negative", s.FlowRate))
	}
	if s.TickIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("tick_interval_ms %d is negative", s.TickIntervalMS))
	}
	if len(s.Tanks) == 0 {
		errs = append(errs, errors.New("no tanks"))
	}
	names := make(map[string]bool, len(s.Tanks))
	for i, t := range s.Tanks {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("tank %d has no name", i))
		} else if names[t.Name] {
			errs = append(errs, fmt.Errorf("tank %q defined twice", t.Name))
		}
		names[t.Name] = true
		for _, f := range []struct {
			name string
			v    float64
		}{
			{"x", t.X}, {"y", t.Y}, {"width", t.Width}, {"height", t.Height},
			{"capacity", t.Capacity}, {"initial", t.Initial},
		} {
			if !finite(f.v) {
				errs = append(errs, fmt.Errorf("tank %q: %s %v is not a finite number", t.Name, f.name, f.v))
			}
		}
		if t.Capacity < 0 {
			errs = append(errs, fmt.Errorf("tank %q: capacity %v is negative", t.Name, t.Capacity))
		}
		if t.Initial < 0 || (t.Capacity > 0 && t.Initial > t.Capacity) {
			errs = append(errs, fmt.Errorf("tank %q: initial %v outside [0, %v]", t.Name, t.Initial, t.Capacity))
		}
		if t.Color != "" {
			if _, err := colorful.Hex(t.Color); err != nil {
				errs = append(errs, fmt.Errorf("tank %q: color %q: %w", t.Name, t.Color, err))
			}
		}
	}
	for i, p := range s.Pipes {
		if !names[p.From] {
			errs = append(errs, fmt.Errorf("pipe %d: unknown source tank %q", i, p.From))
		}
		if !names[p.To] {
			errs = append(errs, fmt.Errorf("pipe %d: unknown destination tank %q", i, p.To))
		}
		if p.From == p.To && p.From != "" {
			errs = append(errs, fmt.Errorf("pipe %d: %q feeds itself", i, p.From))
		}
		if p.Gate != GateNotEmpty && p.Gate != GateReserve {
			errs = append(errs, fmt.Errorf("pipe %d: unknown gate %q", i, p.Gate))
		}
	}
	return errors.Join(errs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s Scene) TickInterval() time.Duration {
	return time.Duration(s.TickIntervalMS) * time.Millisecond
}

// LiquidColor parses the tank colour. ok is false when none is set.
func (t TankSpec) LiquidColor() (color.RGBA, bool) {
	if t.Color == "" {
		return color.RGBA{}, false
	}
	c, err := colorful.Hex(t.Color)
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}
