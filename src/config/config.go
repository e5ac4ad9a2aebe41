// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/logfacade/src/logger"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by [Load].
const (
	EnvConfigFile = "LOGFACADE_CONFIG_FILE"
	EnvFactory    = "LOGFACADE_FACTORY"
	EnvVerbose    = "LOGFACADE_VERBOSE"
)

// Output streams.
const (
	OutputStderr  = "stderr"
	OutputStdout  = "stdout"
	OutputDiscard = "discard"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

//go:embed schema.json
var schema string

var schemaLoader = gojsonschema.NewStringLoader(schema)

// Config is the process-wide logging configuration.
type Config struct {
	// Factory: name of the standard factory to activate. A null value in the
	// file selects the null factory.
	Factory string `json:"factory" yaml:"factory"`
	// Verbose: advisory verbose logging flag
	Verbose bool `json:"verbose" yaml:"verbose"`
	// Output: stream the gated loggers write to
	Output string `json:"output" yaml:"output"`
	// Color: console colouring mode
	Color string `json:"color" yaml:"color"`
}

// Default returns the configuration of a fresh process: warning factory,
// verbose logging off, output on stderr, automatic colouring.
func Default() *Config {
	return &Config{
		Factory: logger.FactoryNameWarning,
		Verbose: false,
		Output:  OutputStderr,
		Color:   ColorAuto,
	}
}

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// detectConfigFormat determines the configuration file format based on file extension.
// Anything that is not .yaml or .yml is treated as JSON.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig decodes data into v using the parser for format.
func unmarshalConfig(data []byte, v any, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load returns the configuration built from defaults, the file at configPath
// and the environment, in that order of precedence (later wins).
//
// When configPath is empty the LOGFACADE_CONFIG_FILE environment variable is
// used; when both are empty only defaults and environment apply. The file is
// validated against the embedded schema before it is merged, and the merged
// result is validated again.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := config.merge(data, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvFactory); v != "" {
		config.Factory = v
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvVerbose, v)
		}
		config.Verbose = b
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// merge validates the raw document and overlays it onto c.
func (c *Config) merge(data []byte, format configFormat) error {
	var doc any
	if err := unmarshalConfig(data, &doc, format); err != nil {
		return err
	}
	if doc == nil {
		// empty file
		return nil
	}

	// An unquoted YAML null (or JSON null) names the null factory.
	nullFactory := false
	if m, ok := doc.(map[string]any); ok {
		if v, present := m["factory"]; present && v == nil {
			m["factory"] = logger.FactoryNameNull
			nullFactory = true
		}
	}

	if err := validate(gojsonschema.NewGoLoader(doc)); err != nil {
		return err
	}
	if err := unmarshalConfig(data, c, format); err != nil {
		return err
	}
	if nullFactory {
		c.Factory = logger.FactoryNameNull
	}
	return nil
}

// Validate checks c against the configuration schema.
func (c *Config) Validate() error {
	return validate(gojsonschema.NewGoLoader(c))
}

func validate(doc gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// NewSink returns the console sink c selects, writing to stdout or stderr.
func (c *Config) NewSink(stdout, stderr io.Writer) *logger.ConsoleSink {
	var w io.Writer
	switch c.Output {
	case OutputStdout:
		w = stdout
	case OutputDiscard:
		w = io.Discard
	default:
		w = stderr
	}

	sink := logger.NewConsoleSink(w)
	switch c.Color {
	case ColorAlways:
		sink.SetColor(true)
	case ColorNever:
		sink.SetColor(false)
	}
	return sink
}

// NewFactory returns a factory of the kind c names, bound to c's sink.
func (c *Config) NewFactory(stdout, stderr io.Writer) (logger.Factory, error) {
	standard, err := logger.FactoryByName(c.Factory)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch standard {
	case logger.Factory(logger.NullFactory):
		return logger.NullFactory, nil
	case logger.Factory(logger.VerboseFactory):
		return logger.NewVerboseFactory(c.NewSink(stdout, stderr)), nil
	default:
		return logger.NewWarningFactory(c.NewSink(stdout, stderr)), nil
	}
}

// Apply installs c on m: the selected factory and the verbose flag.
func (c *Config) Apply(m *logger.Manager, stdout, stderr io.Writer) error {
	f, err := c.NewFactory(stdout, stderr)
	if err != nil {
		return err
	}
	if err := m.SetFactory(f); err != nil {
		return err
	}
	m.SetVerboseEnabled(c.Verbose)
	return nil
}
