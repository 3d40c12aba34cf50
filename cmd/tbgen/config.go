// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/unixpickle/model3d/model3d"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tightbind/builder"
	"github.com/katalvlaran/tightbind/grid"
	"github.com/katalvlaran/tightbind/lattice"
)

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()

	// YAML accepts .nan and .inf; none of the numeric knobs may carry them.
	_ = configValidate.RegisterValidation("finite", validateFinite)
}

// validateFinite rejects NaN and ±Inf floats.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// errInvalidProbe is returned by parseProbe for malformed input.
var errInvalidProbe = errors.New("tbgen: probe must be three comma-separated numbers")

// Config is the YAML description of one lattice.
//
// # Example
//
//	shape: square
//	lengths: [4, 3]
//	hopping: [-1, -0.5]
//	onsite: 0
//	origin: [0, 0, 0]
//	impurity:
//	  model: exponential
//	  strength: 1
//	  length: 2
type Config struct {
	// Shape selects the preset.
	Shape string `yaml:"shape" validate:"required,oneof=chain square rhombus cubic bcc"`

	// Lengths holds Lx and optionally Ly, Lz. Missing entries default to Lx.
	Lengths []int `yaml:"lengths" validate:"required,min=1,max=3,dive,gt=0"`

	// Hopping holds Jx and optionally Jy, Jz. Missing entries default to Jx.
	Hopping []float64 `yaml:"hopping" validate:"max=3,dive,finite"`

	// OnSite is the on-site energy ω. Defaults to 1 when absent.
	OnSite *float64 `yaml:"onsite" validate:"omitempty,finite"`

	// Origin shifts every coordinate of the box.
	Origin []int `yaml:"origin" validate:"omitempty,len=3"`

	// DropZeros discards explicit zeros from the Hamiltonian.
	DropZeros bool `yaml:"drop_zeros"`

	Disorder *DisorderConfig `yaml:"disorder"`
	Impurity *ImpurityConfig `yaml:"impurity"`
}

// DisorderConfig adds uniform on-site noise of the given width.
type DisorderConfig struct {
	Width float64 `yaml:"width" validate:"gte=0,finite"`
	Seed  int64   `yaml:"seed"`
}

// ImpurityConfig selects an impurity model.
type ImpurityConfig struct {
	Model    string  `yaml:"model" validate:"required,oneof=contact radius exponential"`
	Strength float64 `yaml:"strength" validate:"finite"`
	Radius   float64 `yaml:"radius" validate:"gte=0,finite"`
	Length   float64 `yaml:"length" validate:"gte=0,finite"`
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	return configValidate.Struct(c)
}

// LoadConfig reads, parses and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses and validates YAML config bytes.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// impurity converts the impurity section into a lattice model, or nil.
func (c *Config) impurity() lattice.Impurity {
	if c.Impurity == nil {
		return nil
	}
	switch c.Impurity.Model {
	case "radius":
		return lattice.Radius{G: c.Impurity.Strength, R: c.Impurity.Radius}
	case "exponential":
		return lattice.Exponential{G: c.Impurity.Strength, Xi: c.Impurity.Length}
	default:
		return lattice.Contact{G: c.Impurity.Strength}
	}
}

// Options translates a validated config into builder options.
// The first length is passed to builder.New separately.
func (c *Config) Options() []builder.Option {
	var opts []builder.Option
	switch len(c.Lengths) {
	case 2:
		opts = append(opts, builder.WithLengthY(c.Lengths[1]))
	case 3:
		opts = append(opts, builder.WithLengths(c.Lengths[1], c.Lengths[2]))
	}

	hopping := []func(float64) builder.Option{builder.WithHopping, builder.WithHoppingY, builder.WithHoppingZ}
	for i, j := range c.Hopping {
		opts = append(opts, hopping[i](j))
	}
	if c.OnSite != nil {
		opts = append(opts, builder.WithOnSite(*c.OnSite))
	}
	if len(c.Origin) == 3 {
		opts = append(opts, builder.WithOrigin(grid.C(c.Origin[0], c.Origin[1], c.Origin[2])))
	}
	if c.DropZeros {
		opts = append(opts, builder.WithDropZeros())
	}
	if c.Disorder != nil {
		opts = append(opts, builder.WithDisorder(c.Disorder.Width), builder.WithSeed(c.Disorder.Seed))
	}
	if m := c.impurity(); m != nil {
		opts = append(opts, builder.WithImpurity(m))
	}

	return opts
}

// parseProbe parses "x,y,z" into a point.
func parseProbe(s string) (model3d.Coord3D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return model3d.Coord3D{}, fmt.Errorf("%q: %w", s, errInvalidProbe)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return model3d.Coord3D{}, fmt.Errorf("%q: %w", s, errInvalidProbe)
		}
		v[i] = f
	}

	return model3d.XYZ(v[0], v[1], v[2]), nil
}
