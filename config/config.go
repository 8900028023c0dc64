// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct, a mix of settings available in
// settings.yaml and those passed on the command line
type Config struct {
	// path to the input model JSON
	Model string `mapstructure:"model"`

	// path to the tab-separated protein table
	Proteins string `mapstructure:"proteins"`

	// optional FASTA file merged into the protein table for sequences
	Fasta string `mapstructure:"fasta"`

	// build the light variant instead of the full one
	Light bool `mapstructure:"light"`

	// path the rebuilt model is written to; derived from Model when empty
	Out string `mapstructure:"out"`

	// drop a trailing transcript suffix from gene ids before database
	// lookup, e.g. "." turns G1.1 into G1
	KeySuffix string `mapstructure:"key-suffix"`

	// upper bound on the protein pool exchange; 0 leaves it open
	PoolUB float64 `mapstructure:"pool-ub"`
}

// New returns a Config populated by Viper settings (either from the local
// settings.yaml) and/or command line arguments
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return c
}

// OutPath is where the rebuilt model goes: Out if set, otherwise the model
// path with an "_ec" marker before its extension
func (c Config) OutPath() string {
	if c.Out != "" {
		return c.Out
	}
	if i := strings.LastIndex(c.Model, "."); i > 0 {
		return c.Model[:i] + "_ec" + c.Model[i:]
	}
	return c.Model + "_ec"
}
