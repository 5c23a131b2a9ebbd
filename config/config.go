// Package config holds commitlint configuration and reads it from
// .commitlintrc files.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/imdario/mergo"

	"github.com/jeffrom/commitlint/rule"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrInvalidFormat = errors.New("config: invalid output format")

type Config struct {
	Verbose bool       `json:"verbose,omitempty"`
	Quiet   bool       `json:"quiet,omitempty"`
	Format  string     `json:"format,omitempty"`
	Rules   rule.Rules `json:"rules"`
	Term    TerminalIO `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := Merge(&cfg, overrides); err != nil {
			panic(err)
		}
	}
	return cfg
}

// Merge applies the non-empty fields of overrides to cfg. Rules are merged
// field by field, so overriding one option of a rule keeps its level.
func Merge(cfg *Config, overrides *Config) error {
	return mergo.Merge(cfg, overrides, mergo.WithOverride)
}

func (c Config) Validate() error {
	switch c.Format {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	return c.Rules.Check()
}

// Logger builds a logger writing to the configured stderr. Debug lines are
// only shown when Verbose is set. Long-lived callers should build it once and
// keep it.
func (c Config) Logger() *log.Logger {
	lvl := log.WarnLevel
	if c.Verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(c.Term.Stderr, log.Options{
		Prefix: "commitlint",
		Level:  lvl,
	})
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stdout, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Verbose {
		return
	}
	c.Logger().Debugf(msg, args...)
}
