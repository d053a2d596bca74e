package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot is the decoding target for a config file. Pointer fields stay nil
// when the attribute is absent so the base value survives.
type fileRoot struct {
	LogLevel  *string      `hcl:"log_level,optional"`
	LogFormat *string      `hcl:"log_format,optional"`
	PadJagged *bool        `hcl:"pad_jagged,optional"`
	MaxSteps  *int         `hcl:"max_steps,optional"`
	Render    *renderBlock `hcl:"render,block"`
}

type renderBlock struct {
	Wall *string `hcl:"wall,optional"`
	Open *string `hcl:"open,optional"`
	Path *string `hcl:"path,optional"`
}

// LoadFile parses the HCL file at path on top of base.
func LoadFile(path string, base Config) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrInvalidConfig, path, diags)
	}

	return decode(f, path, base)
}

// Parse parses HCL source on top of base. filename is used in diagnostics.
func Parse(src []byte, filename string, base Config) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrInvalidConfig, filename, diags)
	}

	return decode(f, filename, base)
}

func decode(f *hcl.File, filename string, base Config) (*Config, error) {
	var root fileRoot
	diags := gohcl.DecodeBody(f.Body, evalContext(base), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL file %s: %w", ErrInvalidConfig, filename, diags)
	}

	cfg := base
	if root.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(*root.LogLevel)
	}
	if root.LogFormat != nil {
		cfg.LogFormat = strings.ToLower(*root.LogFormat)
	}
	if root.PadJagged != nil {
		cfg.PadJagged = *root.PadJagged
	}
	if root.MaxSteps != nil {
		cfg.MaxSteps = *root.MaxSteps
	}
	if r := root.Render; r != nil {
		if r.Wall != nil {
			cfg.Glyphs.Wall = *r.Wall
		}
		if r.Open != nil {
			cfg.Glyphs.Open = *r.Open
		}
		if r.Path != nil {
			cfg.Glyphs.Path = *r.Path
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &cfg, nil
}

// evalContext exposes the base glyphs as defaults.wall|open|path so a file
// can refer to them.
func evalContext(base Config) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"wall": cty.StringVal(base.Glyphs.Wall),
				"open": cty.StringVal(base.Glyphs.Open),
				"path": cty.StringVal(base.Glyphs.Path),
			}),
		},
	}
}
