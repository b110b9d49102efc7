package rewrite

import (
	"strings"

	"github.com/voxelforge/tsmodelgen/internal/config"
	"github.com/voxelforge/tsmodelgen/internal/model"
)

// OverrideFieldTypes replaces field types matched by the configured
// field-type mapping. The most specific key wins: the fully qualified
// package.Class.field first, then Class.field, then progressively shorter
// dotted suffixes of the fully qualified name.
func OverrideFieldTypes(m *model.TargetModel, cfg *config.Config) {
	if len(cfg.FieldTypeMappings) == 0 {
		return
	}

	for _, t := range m.Types {
		for _, prop := range t.Properties {
			if typ, ok := fieldOverride(cfg.FieldTypeMappings, t.Package, t.Name, prop.Name); ok {
				prop.Type = typ
			}
		}
	}
}

func fieldOverride(mappings map[string]string, pkg, class, field string) (string, bool) {
	fq := class + "." + field
	if pkg != "" {
		fq = pkg + "." + fq
	}

	if v, ok := mappings[fq]; ok {
		return v, true
	}
	if v, ok := mappings[class+"."+field]; ok {
		return v, true
	}

	segs := strings.Split(fq, ".")
	for i := 1; i <= len(segs)-2; i++ {
		key := strings.Join(segs[i:], ".")
		if v, ok := mappings[key]; ok {
			return v, true
		}
	}
	return "", false
}
