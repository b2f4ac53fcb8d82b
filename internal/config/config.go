// Package config loads the optional chk configuration file.
//
// The file is YAML:
//
//	polarity: zero-is-yes   # or zero-is-no
//	filter: "math:*"
//	format: text            # or json
//	exit_zero: false
//	verbose: false
//
// Every key is optional. Unknown keys and out-of-range values are rejected
// by the CUE definition in schema.cue before the file is decoded.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// ErrInvalid is wrapped by errors for files that violate the schema.
var ErrInvalid = errors.New("invalid config")

// Config holds runner settings. The zero value is the default behaviour:
// every test, zero-is-yes polarity, text output, failing exit status on
// test failures.
type Config struct {
	Polarity string `yaml:"polarity"`
	Filter   string `yaml:"filter"`
	Format   string `yaml:"format"`
	ExitZero bool   `yaml:"exit_zero"`
	Verbose  bool   `yaml:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Polarity: "zero-is-yes",
		Format:   "text",
	}
}

// Load reads and validates the file at path. Keys absent from the file keep
// their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates and decodes YAML configuration data.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := validate(raw); err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return cfg, nil
}

// validate unifies the decoded document with #Config.
func validate(raw map[string]any) error {
	if raw == nil {
		return nil
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("failed to compile config schema: %w", err)
	}

	doc := ctx.Encode(raw)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := schema.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
