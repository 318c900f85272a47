package sx

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/npillmayer/sx/dom"
	"github.com/npillmayer/sx/registry"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPrefix is returned for class-name prefixes which would not
// result in valid CSS class names.
var ErrInvalidPrefix = errors.New("sx: invalid class name prefix")

var prefixPattern = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// Config holds settings for a compiler, usually read from a YAML file:
//
//     prefix: app-
type Config struct {
	Prefix string `yaml:"prefix"`
}

// ReadConfig reads a YAML configuration. Missing settings are left at
// their defaults; empty input results in the default configuration.
func ReadConfig(r io.Reader) (Config, error) {
	cfg := Config{Prefix: DefaultPrefix}
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("sx: cannot read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings of a configuration.
func (cfg Config) Validate() error {
	if !prefixPattern.MatchString(cfg.Prefix) {
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, cfg.Prefix)
	}
	return nil
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithPrefix sets the prefix of generated class names. Prefixes are not
// validated, use Config.Validate for untrusted input.
func WithPrefix(prefix string) Option {
	return func(c *Compiler) {
		c.prefix = prefix
	}
}

// WithConfig applies a configuration.
func WithConfig(cfg Config) Option {
	return func(c *Compiler) {
		if cfg.Prefix != "" {
			c.prefix = cfg.Prefix
		}
	}
}

// WithIDSource replaces the generator of class names. The prefix is not
// applied to names from a custom source.
func WithIDSource(next func() string) Option {
	return func(c *Compiler) {
		c.nextID = next
	}
}

// WithDocument lets the compiler insert its rules into doc.
func WithDocument(doc *dom.Document) Option {
	return func(c *Compiler) {
		c.doc = doc
		c.host = registry.DocumentHost{Doc: doc}
	}
}

// WithHost lets the compiler insert its rules into stylesheets of a
// custom host.
func WithHost(host registry.Host) Option {
	return func(c *Compiler) {
		c.doc = nil
		c.host = host
	}
}
