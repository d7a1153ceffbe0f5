// Package config resolves the settings of a chamber run from built-in
// defaults, an optional HCL file and the command line, in that order of
// precedence.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// EnvVar names the variable holding the default config file path.
const EnvVar = "CHAMBER_CONFIG"

// RequiredKeys must all be set before a run starts.
var RequiredKeys = []string{
	"get_params",
	"exec",
	"on_conflict",
}

// File is the content of a config file. Every attribute is optional.
//
//	region          = env.AWS_REGION
//	endpoint_url    = "http://localhost:4566"
//	log_level       = "debug"
//	log_format      = "json"
//	on_conflict     = "keep"
//	recursive       = true
//	with_decryption = true
type File struct {
	Region         *string `hcl:"region,optional"`
	EndpointURL    *string `hcl:"endpoint_url,optional"`
	LogLevel       *string `hcl:"log_level,optional"`
	LogFormat      *string `hcl:"log_format,optional"`
	OnConflict     *string `hcl:"on_conflict,optional"`
	Recursive      *bool   `hcl:"recursive,optional"`
	WithDecryption *bool   `hcl:"with_decryption,optional"`
}

// Settings is the resolved configuration of a run.
type Settings struct {
	GetParams      []string
	Exec           []string
	Region         string
	EndpointURL    string
	LogLevel       string
	LogFormat      string
	OnConflict     string
	Recursive      bool
	WithDecryption bool
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		LogLevel:       "info",
		LogFormat:      "text",
		OnConflict:     "override",
		WithDecryption: true,
	}
}

// Load parses the HCL file at path. Expressions may read the given
// environment through the env variable, e.g. env.AWS_REGION.
func Load(path string, env map[string]string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	var file File
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(env), &file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return &file, nil
}

func evalContext(env map[string]string) *hcl.EvalContext {
	envVal := cty.MapValEmpty(cty.String)
	if len(env) > 0 {
		vals := make(map[string]cty.Value, len(env))
		for k, v := range env {
			vals[k] = cty.StringVal(v)
		}
		envVal = cty.MapVal(vals)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envVal},
	}
}

// ApplyFile overlays every attribute set in f.
func (s *Settings) ApplyFile(f *File) {
	if f == nil {
		return
	}
	setString(&s.Region, f.Region)
	setString(&s.EndpointURL, f.EndpointURL)
	setString(&s.LogLevel, f.LogLevel)
	setString(&s.LogFormat, f.LogFormat)
	setString(&s.OnConflict, f.OnConflict)
	if f.Recursive != nil {
		s.Recursive = *f.Recursive
	}
	if f.WithDecryption != nil {
		s.WithDecryption = *f.WithDecryption
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// MissingKeysError lists required keys without a value.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("config is missing required keys: %s", strings.Join(e.Keys, ", "))
}

// Check verifies that every required key is set and that enumerated
// settings hold a known value.
func (s Settings) Check() error {
	present := map[string]bool{
		"get_params":  len(s.GetParams) > 0,
		"exec":        s.Exec != nil,
		"on_conflict": s.OnConflict != "",
	}
	var missing []string
	for _, key := range RequiredKeys {
		if !present[key] {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &MissingKeysError{Keys: missing}
	}

	if err := oneOf("log_level", s.LogLevel, "debug", "info", "warn", "error"); err != nil {
		return err
	}
	if err := oneOf("log_format", s.LogFormat, "text", "json"); err != nil {
		return err
	}
	return oneOf("on_conflict", s.OnConflict, "override", "keep")
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	sorted := append([]string(nil), allowed...)
	sort.Strings(sorted)
	return fmt.Errorf("invalid %s %q: must be one of %s", key, value, strings.Join(sorted, ", "))
}
