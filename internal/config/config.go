// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package config loads credcheck settings from defaults, a YAML file and
// command-line flags, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/holomush/credcheck/internal/auth"
	"github.com/holomush/credcheck/internal/logging"
	"github.com/holomush/credcheck/internal/xdg"
)

// Default values.
const (
	DefaultLogFormat = "json"
	DefaultLogLevel  = "warn"
)

// Config is the full credcheck configuration.
type Config struct {
	LogFormat string      `koanf:"log_format" json:"log_format,omitempty" jsonschema:"enum=json,enum=text,description=Log output format"`
	LogLevel  string      `koanf:"log_level" json:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,description=Minimum log level"`
	Users     []UserEntry `koanf:"users" json:"users,omitempty" jsonschema:"description=Registry users; the demo users are used when empty"`
}

// UserEntry is one configured registry user.
type UserEntry struct {
	Username string `koanf:"username" json:"username" jsonschema:"minLength=1"`
	Secret   string `koanf:"secret" json:"secret"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogFormat: DefaultLogFormat,
		LogLevel:  DefaultLogLevel,
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return oops.Code("CONFIG_INVALID").
			With("log_format", c.LogFormat).
			Errorf("log-format must be 'json' or 'text', got %q", c.LogFormat)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return oops.Code("CONFIG_INVALID").
			With("log_level", c.LogLevel).
			Errorf("log-level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

// Registry builds the user registry described by the configuration. Without
// configured users the demo registry is returned.
func (c *Config) Registry() (*auth.Registry, error) {
	if len(c.Users) == 0 {
		return auth.DemoRegistry(), nil
	}
	records := make([]auth.UserRecord, len(c.Users))
	for i, u := range c.Users {
		records[i] = auth.UserRecord{Username: u.Username, Secret: u.Secret}
	}
	reg, err := auth.NewRegistry(records...)
	if err != nil {
		return nil, oops.Code("CONFIG_INVALID").
			With("field", "users").
			Wrap(err)
	}
	return reg, nil
}

// Load reads configuration from path and then from flags. An empty path
// means the XDG default file, which may be absent; an explicit path must exist.
// flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	optional := path == ""
	if optional {
		path = xdg.ConfigFile()
	}

	k := koanf.New(".")

	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the operator
	switch {
	case err == nil:
		if len(bytes.TrimSpace(data)) > 0 {
			if err := ValidateSchema(data); err != nil {
				return nil, oops.Code("CONFIG_SCHEMA_INVALID").
					With("path", path).
					Wrap(err)
			}
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, oops.Code("CONFIG_LOAD_FAILED").
					With("path", path).
					Wrap(err)
			}
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, oops.Code("CONFIG_LOAD_FAILED").
			With("path", path).
			Wrap(err)
	}

	if flags != nil {
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").
				With("source", "flags").
				Wrap(err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").
			With("path", path).
			Wrap(err)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
