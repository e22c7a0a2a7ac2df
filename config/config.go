// Package config holds the driver's runtime configuration: the CLI reads
// flags and an optional YAML file into a plain map and decodes it into a
// Config via mapstructure, the same two-step shape used for any
// flags-or-file configuration surface.
package config

import (
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/Kenny-R/dpllsat/diag"
)

// Config is the solver driver's runtime configuration.
type Config struct {
	// Logger receives diagnostic and trace output.
	Logger *logrus.Logger `mapstructure:"-"`
	// Verbose enables per-decision/per-conflict trace logging.
	Verbose bool `mapstructure:"verbose"`
	// Assignment, when true, makes the solve subcommand print the full
	// variable assignment alongside the SAT/UNSAT verdict.
	Assignment bool `mapstructure:"assignment"`
	// Models is the number of distinct models to search for; 1 by default.
	// Preserved from the teacher's SolveMany as an orthogonal dump on top
	// of the same single-model core, not incremental/CDCL solving.
	Models uint `mapstructure:"models"`
}

// New returns a Config with the solver's standard defaults.
func New() *Config {
	return &Config{
		Logger:  diag.NewLogger(false),
		Models:  1,
		Verbose: false,
	}
}

// Decode merges raw (typically built from CLI flags, optionally seeded
// from a YAML file) into a Config, validating field types along the way.
func Decode(raw map[string]interface{}) (*Config, error) {
	c := New()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(diag.ErrBadFormat, err.Error())
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrapf(diag.ErrBadFormat, "decoding configuration: %s", err)
	}
	c.Logger = diag.NewLogger(c.Verbose)
	return c, nil
}

// LoadFile reads a YAML configuration file into a raw map suitable for
// Decode, letting CLI flags (merged by the caller) override file values.
func LoadFile(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(diag.ErrIoFailure, err.Error())
	}
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(diag.ErrBadFormat, "parsing config file: %s", err)
	}
	return raw, nil
}
