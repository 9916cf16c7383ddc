// Package config loads the unisearch run configuration: resource ceilings,
// the vacuum-world grid and cost table, and the named start instances.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/unisearch/search"
	"github.com/katalvlaran/unisearch/vacuum"
)

// ErrUnknownInstance is returned by Config.Instance for a name not in the file.
var ErrUnknownInstance = errors.New("config: unknown instance")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the top-level configuration document.
type Config struct {
	Limits    Limits     `yaml:"limits"`
	Grid      Grid       `yaml:"grid"`
	Costs     Costs      `yaml:"costs"`
	Instances []Instance `yaml:"instances" validate:"required,min=1,dive"`
}

// Limits holds the ceilings handed to every engine.
type Limits struct {
	MaxExpansions int           `yaml:"max_expansions" validate:"gte=0"`
	TimeLimit     time.Duration `yaml:"time_limit" validate:"gte=0"`
	MaxDepth      int           `yaml:"max_depth" validate:"gte=0"`
}

// Grid is the vacuum-world size.
type Grid struct {
	Rows int `yaml:"rows" validate:"gte=1"`
	Cols int `yaml:"cols" validate:"gte=1"`
}

// Costs is the per-action step cost table.
type Costs struct {
	Left  float64 `yaml:"left" validate:"gte=0"`
	Right float64 `yaml:"right" validate:"gte=0"`
	Up    float64 `yaml:"up" validate:"gte=0"`
	Down  float64 `yaml:"down" validate:"gte=0"`
	Suck  float64 `yaml:"suck" validate:"gte=0"`
}

// Instance is a named start state.
type Instance struct {
	Name  string `yaml:"name" validate:"required"`
	Start Cell   `yaml:"start"`
	Dirt  []Cell `yaml:"dirt" validate:"dive"`
}

// Cell is a 1-based grid coordinate.
type Cell struct {
	Row int `yaml:"row" validate:"gte=1"`
	Col int `yaml:"col" validate:"gte=1"`
}

// Default returns the built-in configuration: a 4×5 grid, the classic cost
// table, one million expansions, one hour, and two instances.
func Default() Config {
	c := vacuum.DefaultCosts()

	return Config{
		Limits: Limits{
			MaxExpansions: search.DefaultMaxExpansions,
			TimeLimit:     search.DefaultTimeLimit,
			MaxDepth:      search.DefaultMaxDepth,
		},
		Grid:  Grid{Rows: 4, Cols: 5},
		Costs: Costs{Left: c.Left, Right: c.Right, Up: c.Up, Down: c.Down, Suck: c.Suck},
		Instances: []Instance{
			{
				Name:  "Instance 1",
				Start: Cell{Row: 2, Col: 2},
				Dirt:  []Cell{{1, 2}, {2, 4}, {3, 5}},
			},
			{
				Name:  "Instance 2",
				Start: Cell{Row: 3, Col: 2},
				Dirt:  []Cell{{1, 2}, {2, 1}, {2, 4}, {3, 3}},
			},
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
// Keys absent from the file keep their default values; a non-empty
// instances list replaces the defaults entirely.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks struct constraints and that the world and every instance
// can actually be built.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	w, err := c.World()
	if err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	for _, in := range c.Instances {
		if _, err = in.State(w); err != nil {
			return fmt.Errorf("config: instance %q: %w", in.Name, err)
		}
	}

	return nil
}

// World builds the vacuum world described by the grid and cost table.
func (c Config) World() (*vacuum.World, error) {
	return vacuum.NewWorld(c.Grid.Rows, c.Grid.Cols, vacuum.Costs{
		Left:  c.Costs.Left,
		Right: c.Costs.Right,
		Up:    c.Costs.Up,
		Down:  c.Costs.Down,
		Suck:  c.Costs.Suck,
	})
}

// Instance returns the instance called name.
func (c Config) Instance(name string) (Instance, error) {
	for _, in := range c.Instances {
		if in.Name == name {
			return in, nil
		}
	}

	return Instance{}, fmt.Errorf("%w: %q", ErrUnknownInstance, name)
}

// SearchOptions converts the limits into engine options.
func (c Config) SearchOptions() []search.Option {
	return []search.Option{
		search.WithMaxExpansions(c.Limits.MaxExpansions),
		search.WithTimeLimit(c.Limits.TimeLimit),
		search.WithMaxDepth(c.Limits.MaxDepth),
	}
}

// State builds the instance's start state in w.
func (in Instance) State(w *vacuum.World) (vacuum.State, error) {
	dirt := make([]vacuum.Cell, len(in.Dirt))
	for i, d := range in.Dirt {
		dirt[i] = vacuum.Cell{Row: d.Row, Col: d.Col}
	}

	return w.State(in.Start.Row, in.Start.Col, dirt...)
}
