// Package config holds the settings of a feature extraction run.
//
// A Config starts from Default, is optionally overlaid by a YAML file, and is
// finally overlaid by command-line flags in main. Validate must be called
// before the accessor methods that return parsed values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/stimulus-features/internal/hull"
	"github.com/ironsheep/stimulus-features/internal/imaging"
	"github.com/ironsheep/stimulus-features/internal/segment"
)

// OnError selects what the batch driver does when one image fails.
type OnError string

const (
	// OnErrorAbort stops the batch at the first failing image and writes no
	// output.
	OnErrorAbort OnError = "abort"
	// OnErrorSkip records the failure, continues, and writes the rows of
	// every image that succeeded.
	OnErrorSkip OnError = "skip"
)

// Defaults match the yellow/blue-on-gray stimulus set.
const (
	DefaultColor1     = "#FFFF00"
	DefaultColor2     = "#0000FF"
	DefaultBackground = "#808080"
	DefaultExtension  = ".png"
	DefaultOutputFile = "stimulus features.csv"
)

// Config is the full set of run parameters.
type Config struct {
	// InputDir is the root directory searched recursively for images.
	InputDir string `yaml:"input_dir"`

	// OutputFile is the CSV path. It is written only when the run succeeds.
	OutputFile string `yaml:"output_file"`

	// Extension filters discovered files, e.g. ".png". Matching ignores case.
	Extension string `yaml:"extension"`

	// Color1 and Color2 are the reference colors, as hex strings.
	Color1 string `yaml:"color1"`
	Color2 string `yaml:"color2"`

	// Background is only used to paint mask previews.
	Background string `yaml:"background"`

	// HullPolicy is "zero" or "strict" ("error" is accepted as an alias for
	// "strict"); see hull.ParsePolicy.
	HullPolicy string `yaml:"hull_policy"`

	// OnError is "abort" or "skip".
	OnError OnError `yaml:"on_error"`

	// MaskDir, if set, receives a PNG rendering of each image's label grid.
	MaskDir string `yaml:"mask_dir"`

	// MaskScale enlarges mask previews by an integer factor.
	MaskScale int `yaml:"mask_scale"`

	// CheckComponents compares blob counts with the filename labels and
	// logs mismatches.
	CheckComponents bool `yaml:"check_components"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`

	palette    segment.Palette
	background imaging.RGBColor
	policy     hull.Policy
	validated  bool
}

// Default returns a Config with every optional field set.
func Default() *Config {
	return &Config{
		OutputFile: DefaultOutputFile,
		Extension:  DefaultExtension,
		Color1:     DefaultColor1,
		Color2:     DefaultColor2,
		Background: DefaultBackground,
		HullPolicy: hull.PolicyZero.String(),
		OnError:    OnErrorAbort,
		MaskScale:  1,
	}
}

// Load reads a YAML file on top of Default. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and parses colors and the hull policy.
func (c *Config) Validate() error {
	var errs []error

	if c.InputDir == "" {
		errs = append(errs, errors.New("input directory is required"))
	}
	if c.OutputFile == "" {
		errs = append(errs, errors.New("output file is required"))
	}

	c.Extension = strings.TrimSpace(c.Extension)
	if c.Extension == "" {
		errs = append(errs, errors.New("extension is required"))
	} else if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}

	var err error
	if c.palette.Color1, err = imaging.ParseColor(c.Color1); err != nil {
		errs = append(errs, fmt.Errorf("color1: %w", err))
	}
	if c.palette.Color2, err = imaging.ParseColor(c.Color2); err != nil {
		errs = append(errs, fmt.Errorf("color2: %w", err))
	}
	if c.background, err = imaging.ParseColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if c.policy, err = hull.ParsePolicy(c.HullPolicy); err != nil {
		errs = append(errs, err)
	}

	switch c.OnError {
	case OnErrorAbort, OnErrorSkip:
	case "":
		c.OnError = OnErrorAbort
	default:
		errs = append(errs, fmt.Errorf("unknown on_error %q (want abort or skip)", c.OnError))
	}

	if c.MaskScale < 1 {
		c.MaskScale = 1
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	c.validated = true
	return nil
}

// Palette returns the parsed reference colors. Panics if Validate has not
// succeeded.
func (c *Config) Palette() segment.Palette {
	c.mustBeValid()
	return c.palette
}

// BackgroundColor returns the parsed mask background color.
func (c *Config) BackgroundColor() imaging.RGBColor {
	c.mustBeValid()
	return c.background
}

// Policy returns the parsed hull policy.
func (c *Config) Policy() hull.Policy {
	c.mustBeValid()
	return c.policy
}

func (c *Config) mustBeValid() {
	if !c.validated {
		panic("config: Validate must succeed before use")
	}
}
