package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PackageRule maps a source directory suffix to a target package. Rules are
// tested in declared order.
type PackageRule struct {
	DirEndsWith string `yaml:"dirEndsWith" json:"dirEndsWith" mapstructure:"dirEndsWith"`
	Pkg         string `yaml:"pkg" json:"pkg" mapstructure:"pkg"`
}

// Config is the immutable rule table for one run. It is loaded before
// parsing and consulted read-only by every later pass.
type Config struct {
	IgnoreTsItems            []string          `yaml:"ignoreTsItems" json:"ignoreTsItems" mapstructure:"ignoreTsItems"`
	ExcludeDirSuffixes       []string          `yaml:"excludeDirSuffixes" json:"excludeDirSuffixes" mapstructure:"excludeDirSuffixes"`
	BasePackage              string            `yaml:"basePackage" json:"basePackage" mapstructure:"basePackage"`
	PackageRules             []PackageRule     `yaml:"packageRules" json:"packageRules" mapstructure:"packageRules"`
	TypeMappings             map[string]string `yaml:"typeMappings" json:"typeMappings" mapstructure:"typeMappings"`
	FieldTypeMappings        map[string]string `yaml:"fieldTypeMappings" json:"fieldTypeMappings" mapstructure:"fieldTypeMappings"`
	InterfaceExtendsMappings map[string]string `yaml:"interfaceExtendsMappings" json:"interfaceExtendsMappings" mapstructure:"interfaceExtendsMappings"`
	DefaultBaseClass         string            `yaml:"defaultBaseClass" json:"defaultBaseClass" mapstructure:"defaultBaseClass"`
	EnumInterfaceMapping     map[string]string `yaml:"enumInterfaceMapping" json:"enumInterfaceMapping" mapstructure:"enumInterfaceMapping"`

	AdditionalClassAnnotations            []string `yaml:"additionalClassAnnotations" json:"additionalClassAnnotations" mapstructure:"additionalClassAnnotations"`
	AdditionalFieldAnnotations            []string `yaml:"additionalFieldAnnotations" json:"additionalFieldAnnotations" mapstructure:"additionalFieldAnnotations"`
	AdditionalOptionalFieldAnnotations    []string `yaml:"additionalOptionalFieldAnnotations" json:"additionalOptionalFieldAnnotations" mapstructure:"additionalOptionalFieldAnnotations"`
	AdditionalNonOptionalFieldAnnotations []string `yaml:"additionalNonOptionalFieldAnnotations" json:"additionalNonOptionalFieldAnnotations" mapstructure:"additionalNonOptionalFieldAnnotations"`
}

// Default returns the empty configuration used when no config file exists.
func Default() *Config {
	return &Config{}
}

// Load reads a configuration document from path. A missing file yields the
// default configuration; a file that exists but fails to parse is fatal.
// YAML is a superset of JSON, so both encodings are accepted.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
	}

	return cfg, nil
}

// Ignored reports whether a declaration name is dropped pre-modeling.
func (c *Config) Ignored(name string) bool {
	for _, n := range c.IgnoreTsItems {
		if n == name {
			return true
		}
	}
	return false
}
