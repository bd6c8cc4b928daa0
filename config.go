package view

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"
)

// Config holds the settings a Renderer is built from.
type Config struct {
	// BaseDir is the directory that TemplatesDir, StylesDir, and
	// ScriptsDir are resolved against. It is ignored when the Renderer
	// is given an fs.FS with WithFS.
	BaseDir string `yaml:"baseDir"`

	// TemplatesDir holds the <view>.html templates.
	TemplatesDir string `yaml:"templatesDir"`

	// StylesDir holds the optional <view>.css stylesheets.
	StylesDir string `yaml:"stylesDir"`

	// ScriptsDir holds the optional <view>.js scripts.
	ScriptsDir string `yaml:"scriptsDir"`

	// Delimiters mark placeholders in templates.
	Delimiters Delimiters `yaml:"delimiters"`

	// StrictTransportSecurity is the value of the Strict-Transport-Security
	// baseline header.
	StrictTransportSecurity string `yaml:"strictTransportSecurity"`

	// Headers are applied on top of the baseline headers for every
	// response the Renderer produces. Headers passed to Render still win.
	Headers Header `yaml:"headers"`
}

// DefaultConfig returns a Config that reads templates, styles, and scripts
// from directories of those names under the working directory.
func DefaultConfig() Config {
	return Config{
		BaseDir:                 ".",
		TemplatesDir:            "templates",
		StylesDir:               "styles",
		ScriptsDir:              "scripts",
		Delimiters:              DefaultDelimiters,
		StrictTransportSecurity: DefaultStrictTransportSecurity,
	}
}

// LoadConfig reads a YAML Config from path. Fields the file doesn't set keep
// their DefaultConfig values; unknown fields are an error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return Config{}, fmt.Errorf("error reading config %q: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("error parsing config %q: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML config data layered over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

// Option changes how a Renderer is built.
type Option func(*options)

type options struct {
	fsys           fs.FS
	tracerProvider trace.TracerProvider
	delims         *Delimiters
}

// WithTracerProvider makes the Renderer create its spans from tp instead of
// the global otel TracerProvider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// WithDelimiters overrides the Config's Delimiters.
func WithDelimiters(delims Delimiters) Option {
	return func(o *options) {
		o.delims = &delims
	}
}
