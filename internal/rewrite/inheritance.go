package rewrite

import (
	"log/slog"
	"strings"

	"github.com/voxelforge/tsmodelgen/internal/config"
	"github.com/voxelforge/tsmodelgen/internal/model"
)

// ResolveInheritance settles every class's extends clause. A base name that
// resolved against the model, or that is already dotted-qualified, is kept.
// An unresolved bare name goes through the interface-extends mapping; with
// no mapping the base is dropped and recorded so the emitter can note it.
// Classes still without a base receive the configured default base class.
// A base whose simple name is Object is suppressed entirely, since every
// class extends the root object implicitly.
func ResolveInheritance(m *model.TargetModel, cfg *config.Config) {
	for _, t := range m.Types {
		if t.Kind != model.KindClass || t.Helper {
			continue
		}

		if t.Extends != nil && t.Extends.Resolved == nil && simpleName(t.Extends.Raw) == "Object" {
			t.Extends = nil
		}

		if t.Extends != nil && t.Extends.Resolved == nil {
			raw := t.Extends.Raw
			switch {
			case strings.Contains(raw, "."):
				// qualified external base, kept as-is
			case cfg.InterfaceExtendsMappings[raw] != "":
				t.Extends = &model.TypeRef{Raw: cfg.InterfaceExtendsMappings[raw]}
			default:
				slog.Warn("dropping unresolvable base", "type", t.Name, "base", raw)
				t.UnresolvedBases = append(t.UnresolvedBases, raw)
				t.Extends = nil
			}
		}

		if t.Extends == nil && cfg.DefaultBaseClass != "" {
			t.Extends = &model.TypeRef{Raw: cfg.DefaultBaseClass}
		}

		if t.Extends != nil && simpleName(t.Extends.Display()) == "Object" {
			t.Extends = nil
		}
	}
}

func simpleName(qualified string) string {
	if idx := strings.LastIndexByte(qualified, '.'); idx >= 0 {
		return qualified[idx+1:]
	}
	return qualified
}
