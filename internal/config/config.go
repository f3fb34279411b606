package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/knei-knurow/attmath"
)

// ErrUnknownMode is returned for a rotation mode other than "coordinate" or "vector".
var ErrUnknownMode = errors.New("config: unknown rotation mode")

// Config holds the conversion settings of the command line tool.
type Config struct {
	// Euler angle sequence tag, e.g. "R321", "321" or "zyx"
	Sequence string `json:"sequence"`

	// Read and print angles in degrees instead of radians
	Degrees bool `json:"degrees"`

	// Number of decimals printed
	Precision int `json:"precision"`

	// Rotation mode of single axis rotations, "coordinate" or "vector"
	Mode string `json:"mode"`

	// Seed of the random rotation generator
	Seed uint64 `json:"seed"`
}

// Flags holds CLI flag values that override config file settings.
// Nil pointers and empty strings leave the file value untouched.
type Flags struct {
	Sequence  string
	Degrees   *bool
	Precision *int
	Mode      string
	Seed      *uint64
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Sequence:  attmath.R321.String(),
		Degrees:   true,
		Precision: 15,
		Mode:      attmath.CoordinateRotation.String(),
		Seed:      1,
	}
}

// Load reads a YAML config file on top of Default.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}

	return cfg, nil
}

// Resolve applies the CLI flags on top of c.
// CLI flags take priority when set.
func (c *Config) Resolve(flags Flags) {
	if flags.Sequence != "" {
		c.Sequence = flags.Sequence
	}
	if flags.Degrees != nil {
		c.Degrees = *flags.Degrees
	}
	if flags.Precision != nil {
		c.Precision = *flags.Precision
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Seed != nil {
		c.Seed = *flags.Seed
	}
}

// Validate checks that every setting can be used.
func (c Config) Validate() error {
	if _, err := c.EulerSequence(); err != nil {
		return errors.Wrap(err, "config: sequence")
	}
	if _, err := c.RotationMode(); err != nil {
		return errors.Wrap(err, "config: mode")
	}
	if c.Precision < 0 {
		return errors.Errorf("config: precision must not be negative, got %d", c.Precision)
	}
	return nil
}

// EulerSequence returns the parsed Sequence.
func (c Config) EulerSequence() (attmath.EulerSequence, error) {
	return attmath.ParseEulerSequence(c.Sequence)
}

// RotationMode returns the parsed Mode.
func (c Config) RotationMode() (attmath.RotationMode, error) {
	switch strings.ToLower(strings.TrimSpace(c.Mode)) {
	case attmath.CoordinateRotation.String(), "coord", "frame":
		return attmath.CoordinateRotation, nil
	case attmath.VectorRotation.String(), "vec":
		return attmath.VectorRotation, nil
	}
	return 0, errors.Wrapf(ErrUnknownMode, "%q", c.Mode)
}

// Write stores c as YAML at path.
func (c Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "config: marshal")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "config: write %s", path)
	}
	return nil
}
