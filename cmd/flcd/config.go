package main

import (
	"bytes"
	"path/filepath"

	"github.com/cata-b/FLCDCompiler/pif"
	"github.com/cata-b/FLCDCompiler/tokenizer"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a run. It can be loaded from a YAML or HCL
// file, command line flags take precedence.
//
type Config struct {
	IdentifierFA string `yaml:"identifier_fa,omitempty" hcl:"identifier_fa,optional"` // automaton for identifiers
	ConstantFA   string `yaml:"constant_fa,omitempty" hcl:"constant_fa,optional"`     // automaton for integer constants
	BufferSize   int    `yaml:"buffer_size,omitempty" hcl:"buffer_size,optional"`
	ColumnWidth  int    `yaml:"column_width,omitempty" hcl:"column_width,optional"`
	Debug        bool   `yaml:"debug,omitempty" hcl:"debug,optional"`
}

// DefaultConfig returns the settings used when neither a config file nor
// flags set them.
//
func DefaultConfig() Config {
	return Config{
		BufferSize:  tokenizer.DefaultBufferSize,
		ColumnWidth: pif.DefaultColumnWidth,
	}
}

// LoadConfig reads a config file from fs. Files with the .hcl extension are
// read as HCL, any other file as YAML. Fields missing from the file keep
// their default value.
//
// HCL files can refer to the defaults as default_buffer_size and
// default_column_width:
//
//	buffer_size = default_buffer_size * 4
//
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, errors.Errorf("reading config file: %w", err)
	}

	if filepath.Ext(path) == ".hcl" {
		if err := decodeHCL(data, path, &cfg); err != nil {
			return cfg, err
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return cfg, errors.Errorf("decoding config file %s: %w", path, err)
		}
	}

	if cfg.BufferSize <= 0 {
		return cfg, errors.Errorf("config file %s: buffer_size must be positive, got %d", path, cfg.BufferSize)
	}
	if cfg.ColumnWidth <= 0 {
		return cfg, errors.Errorf("config file %s: column_width must be positive, got %d", path, cfg.ColumnWidth)
	}
	return cfg, nil
}

func decodeHCL(data []byte, path string, cfg *Config) error {
	f, diags := hclparse.NewParser().ParseHCL(data, path)
	if diags.HasErrors() {
		return errors.Errorf("parsing HCL: %s", diags.Error())
	}

	def := DefaultConfig()
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_buffer_size":  cty.NumberIntVal(int64(def.BufferSize)),
			"default_column_width": cty.NumberIntVal(int64(def.ColumnWidth)),
		},
	}
	if diags := gohcl.DecodeBody(f.Body, ctx, cfg); diags.HasErrors() {
		return errors.Errorf("decoding HCL: %s", diags.Error())
	}
	return nil
}
