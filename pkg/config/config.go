// Package config loads pymatrix settings from an optional TOML file.
//
// Example pymatrix.toml:
//
//	repository = "https://github.com/python/cpython.git"
//	source     = "remote"
//	filter     = "lexical"
//	major      = 3
//	min_minor  = 8
//	os         = ["ubuntu-22.04", "windows-2022", "macos-14"]
//
// Every key is optional; missing keys keep their defaults. Command-line
// flags are applied on top by the CLI.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pymatrix/pkg/doctor"
	"github.com/matzehuels/pymatrix/pkg/errors"
	"github.com/matzehuels/pymatrix/pkg/matrix"
	"github.com/matzehuels/pymatrix/pkg/tags"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "pymatrix.toml"

// Filter names.
const (
	FilterLexical = "lexical"
	FilterSemver  = "semver"
)

// Config holds all settings.
type Config struct {
	Repository string   `toml:"repository"`
	Source     string   `toml:"source"`
	Filter     string   `toml:"filter"`
	Major      int      `toml:"major"`
	MinMinor   int      `toml:"min_minor"`
	Constraint string   `toml:"constraint"`
	OS         []string `toml:"os"`
	Python     string   `toml:"python"`
	TLSURL     string   `toml:"tls_url"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Repository: tags.DefaultRepository,
		Source:     tags.KindClone,
		Filter:     FilterLexical,
		Major:      matrix.DefaultMajor,
		MinMinor:   matrix.DefaultMinMinor,
		Constraint: matrix.DefaultConstraint,
		OS:         matrix.DefaultOS(),
		Python:     doctor.DefaultPython,
		TLSURL:     doctor.DefaultTLSURL,
	}
}

// Load reads path on top of the defaults.
//
// If path is empty, DefaultFile is used when it exists and the defaults are
// returned otherwise. An explicit path that does not exist is an error.
// Values are not validated here; callers apply their overrides first and
// then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, errors.Wrap(errors.ErrCodeConfig, err, "read config %s", path)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeConfig, "unknown key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

// Validate checks that names and ranges are usable.
func (c *Config) Validate() error {
	if err := errors.ValidateRepositoryURL(c.Repository); err != nil {
		return err
	}
	switch c.Source {
	case tags.KindClone, tags.KindRemote:
	default:
		return errors.New(errors.ErrCodeConfig, "source must be %q or %q, got %q", tags.KindClone, tags.KindRemote, c.Source)
	}
	switch c.Filter {
	case FilterLexical, FilterSemver:
	default:
		return errors.New(errors.ErrCodeConfig, "filter must be %q or %q, got %q", FilterLexical, FilterSemver, c.Filter)
	}
	if c.Major < 0 || c.MinMinor < 0 {
		return errors.New(errors.ErrCodeConfig, "major and min_minor must not be negative")
	}
	if len(c.OS) == 0 {
		return errors.New(errors.ErrCodeConfig, "os list must not be empty")
	}
	return nil
}

// NewFilter returns the matrix filter selected by c.
func (c *Config) NewFilter() (matrix.Filter, error) {
	if c.Filter == FilterSemver {
		f, err := matrix.NewSemverFilter(c.Constraint)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfig, err, "semver filter")
		}
		return f, nil
	}
	return matrix.NewLexicalFilter(c.Major, c.MinMinor), nil
}
