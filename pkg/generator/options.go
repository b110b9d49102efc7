package generator

import "path/filepath"

// Options control a generation run.
//
// Roots         – source root directories to scan
// OutDir        – directory receiving the generated tree
// ConfigFile    – rule-table document; empty means all defaults
// ModelDumpPath – optional path for the intermediate source-model dump
type Options struct {
	Roots         []string `json:"roots,omitempty" yaml:"roots,omitempty" mapstructure:"roots,omitempty"`
	OutDir        string   `json:"out_dir,omitempty" yaml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	ConfigFile    string   `json:"config_file,omitempty" yaml:"config_file,omitempty" mapstructure:"config_file,omitempty"`
	ModelDumpPath string   `json:"model_dump,omitempty" yaml:"model_dump,omitempty" mapstructure:"model_dump,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		OutDir: "generated",
	}
}

func (o *Options) Normalize() {
	if len(o.Roots) == 0 {
		o.Roots = []string{"."}
	}
	for i, r := range o.Roots {
		if abs, err := filepath.Abs(r); err == nil {
			o.Roots[i] = abs
		}
	}
	if o.OutDir == "" {
		o.OutDir = "generated"
	}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithRoots(roots ...string) Option {
	return func(o *Options) { o.Roots = append(o.Roots, roots...) }
}
func WithOutDir(d string) Option     { return func(o *Options) { o.OutDir = d } }
func WithConfigFile(f string) Option { return func(o *Options) { o.ConfigFile = f } }
func WithModelDump(p string) Option  { return func(o *Options) { o.ModelDumpPath = p } }
