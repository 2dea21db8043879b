package cli

import (
	"fmt"

	"github.com/midbel/toml"
	"github.com/spf13/pflag"
)

// Config is the optional TOML configuration file.
//
//	location   = "Europe/Paris"
//	layout     = "2006-01-02 15:04"
//	week_start = "monday"
//	format     = "json"
//
// Command-line flags take precedence over file values.
type Config struct {
	Location  string `toml:"location"`
	Layout    string `toml:"layout"`
	WeekStart string `toml:"week_start"`
	Format    string `toml:"format"`
}

// LoadConfig decodes the TOML file at path.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}
	return &cfg, nil
}

// apply copies non-empty file values into opts, skipping any option whose
// flag was set explicitly.
func (c *Config) apply(opts *RootOptions, flags *pflag.FlagSet) {
	set := func(name, value string, dst *string) {
		if value == "" || flags.Changed(name) {
			return
		}
		*dst = value
	}
	set("location", c.Location, &opts.Location)
	set("layout", c.Layout, &opts.Layout)
	set("week-start", c.WeekStart, &opts.WeekStart)
	set("format", c.Format, &opts.Format)
}
