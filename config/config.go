// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the configuration of the data browser,
// with defaults from `default:` struct field tags, loaded from
// a TOML or YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/databrowse/base/errors"
	"cogentcore.org/databrowse/base/logx"
	"cogentcore.org/databrowse/browser"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file loaded by [Load] when no file is given.
const DefaultFile = "~/.config/dslice/config.toml"

// Config is the data browser configuration.
type Config struct {

	// Rank is the number of free axes of the window
	// used by commands without a view, 1 or 2.
	Rank int `default:"1" toml:"rank" yaml:"rank"`

	// Precision is the number of significant digits of exported
	// values, for stores without their own precision. -1 is the
	// shortest exact representation.
	Precision int `default:"-1" toml:"precision" yaml:"precision"`

	// Views are the views of the browser.
	Views []browser.ViewSpec `default:"[{'Name':'Table','Rank':2},{'Name':'Line','Rank':1},{'Name':'HeatMap','Rank':2}]" toml:"views" yaml:"views"`

	// Watch reloads data files when they change.
	Watch bool `toml:"watch" yaml:"watch"`

	// Location is the catalog group that loaded files are added to.
	Location string `default:"/" toml:"location" yaml:"location"`

	// Log has the logging options.
	Log Log `toml:"log" yaml:"log"`
}

// Log has the logging options, typically set from command line flags.
type Log struct {

	// VeryVerbose logs debug messages.
	VeryVerbose bool `toml:"very_verbose" yaml:"very_verbose"`

	// Verbose logs informational messages.
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// Quiet only logs errors.
	Quiet bool `toml:"quiet" yaml:"quiet"`
}

// Level returns the log level for the options.
func (l *Log) Level() slog.Level {
	return logx.LevelFromFlags(l.VeryVerbose, l.Verbose, l.Quiet)
}

// New returns a new config with default values.
func New() *Config {
	cfg := &Config{}
	errors.Log(SetFromDefaults(cfg))
	return cfg
}

// Validate checks the config values.
func (c *Config) Validate() error {
	if c.Rank < 1 || c.Rank > 2 {
		return fmt.Errorf("config: rank %d is not 1 or 2", c.Rank)
	}
	for _, v := range c.Views {
		if v.Rank < 1 || v.Rank > 2 {
			return fmt.Errorf("config: view %q: rank %d is not 1 or 2", v.Name, v.Rank)
		}
	}
	return nil
}

// Open returns the config read from the named file, on top of the
// default values. The format is given by the extension: .toml,
// .yaml or .yml. A leading ~ is expanded to the home directory.
func Open(filename string) (*Config, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	cfg := New()
	if err := Decode(cfg, b, filepath.Ext(fn)); err != nil {
		return nil, fmt.Errorf("config %q: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", filename, err)
	}
	return cfg, nil
}

// Decode decodes the config from b in the format of given
// file extension.
// Views given in the file replace the existing views.
func Decode(cfg *Config, b []byte, ext string) error {
	views := cfg.Views
	cfg.Views = nil
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		err = fmt.Errorf("unsupported config file type %q", ext)
	}
	if cfg.Views == nil {
		cfg.Views = views
	}
	return err
}

// Load returns the config from the named file, or from [DefaultFile]
// if filename is "". A missing default file is not an error, and
// gives the default values.
func Load(filename string) (*Config, error) {
	if filename != "" {
		return Open(filename)
	}
	cfg, err := Open(DefaultFile)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	return cfg, err
}

// Save writes the config to the named file, in TOML format.
func (c *Config) Save(filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(fn, b, 0o666)
}
