package config

import (
	"os"

	"github.com/osuushi/raycross/geometry"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	OnErrorAbort = "abort"
	OnErrorSkip  = "skip"
)

type Config struct {
	Tolerance    float64 `yaml:"tolerance"`
	WidenBounds  bool    `yaml:"widen_bounds"`
	OnError      string  `yaml:"on_error"`
	InputFormat  string  `yaml:"input_format"`
	OutputFormat string  `yaml:"output_format"`
	LogLevel     string  `yaml:"log_level"`
	Draw         string  `yaml:"draw"`
	Imgcat       bool    `yaml:"imgcat"`
}

func Default() Config {
	return Config{
		Tolerance:    geometry.DefaultTolerance,
		OnError:      OnErrorAbort,
		InputFormat:  "text",
		OutputFormat: "text",
		LogLevel:     "warn",
	}
}

// Load a YAML file on top of the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "could not read config")
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(err, "could not parse config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if !(c.Tolerance > 0) {
		return errors.Errorf("tolerance must be positive, got %v", c.Tolerance)
	}
	if !oneOf(c.OnError, OnErrorAbort, OnErrorSkip) {
		return errors.Errorf("unknown on_error %q", c.OnError)
	}
	if !oneOf(c.InputFormat, "text", "svg", "geojson") {
		return errors.Errorf("unknown input_format %q", c.InputFormat)
	}
	if !oneOf(c.OutputFormat, "text", "geojson") {
		return errors.Errorf("unknown output_format %q", c.OutputFormat)
	}
	if !oneOf(c.LogLevel, "debug", "info", "warn", "error") {
		return errors.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

func (c Config) Solver() geometry.Solver {
	return geometry.Solver{Tolerance: c.Tolerance, WidenBounds: c.WidenBounds}
}

func (c Config) SkipErrors() bool {
	return c.OnError == OnErrorSkip
}

func oneOf(value string, options ...string) bool {
	for _, option := range options {
		if value == option {
			return true
		}
	}
	return false
}
