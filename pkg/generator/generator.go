// Package generator is the public entry point: it wires configuration,
// parsing, model building, the rewrite passes and emission into one run.
package generator

import (
	"context"
	"log/slog"

	"github.com/voxelforge/tsmodelgen/internal/builder"
	"github.com/voxelforge/tsmodelgen/internal/config"
	"github.com/voxelforge/tsmodelgen/internal/dump"
	"github.com/voxelforge/tsmodelgen/internal/emit"
	"github.com/voxelforge/tsmodelgen/internal/parser"
	"github.com/voxelforge/tsmodelgen/internal/rewrite"
)

// Run executes one generation pass. Running twice with identical inputs
// produces identical output trees.
func Run(ctx context.Context, opts ...Option) error {
	o := NewOptions()
	for _, opt := range opts {
		opt(o)
	}
	o.Normalize()

	cfg, err := config.Load(o.ConfigFile)
	if err != nil {
		return err
	}

	src, err := parser.New(cfg).ParseRoots(ctx, o.Roots)
	if err != nil {
		return err
	}
	slog.Info("parsed source roots", "roots", len(o.Roots), "files", len(src.Files), "declarations", len(src.Declarations()))

	if o.ModelDumpPath != "" {
		if err := dump.Save(src, o.ModelDumpPath); err != nil {
			return err
		}
	}

	m := builder.New(src).Build()
	rewrite.Apply(m, cfg)
	slog.Info("built model", "types", len(m.Types))

	return emit.New(cfg, m, o.OutDir).EmitAll()
}
