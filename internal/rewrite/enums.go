package rewrite

import (
	"sort"
	"strings"

	"github.com/voxelforge/tsmodelgen/internal/config"
	"github.com/voxelforge/tsmodelgen/internal/model"
)

// AssignEnumInterfaces attaches the configured marker interface to each enum.
// Lookup order: exact enum name, then package-prefix patterns of the form
// "prefix.*" (tested in sorted key order for stable output), then the "*"
// catch-all. Enums never gain an extends clause from this pass.
func AssignEnumInterfaces(m *model.TargetModel, cfg *config.Config) {
	if len(cfg.EnumInterfaceMapping) == 0 {
		return
	}

	var prefixKeys []string
	for k := range cfg.EnumInterfaceMapping {
		if strings.HasSuffix(k, ".*") {
			prefixKeys = append(prefixKeys, k)
		}
	}
	sort.Strings(prefixKeys)

	for _, t := range m.Types {
		if t.Kind != model.KindEnum {
			continue
		}
		iface := enumInterfaceFor(t, cfg.EnumInterfaceMapping, prefixKeys)
		if iface == "" {
			continue
		}
		t.Implements = append(t.Implements, &model.TypeRef{Raw: iface})
	}
}

func enumInterfaceFor(t *model.TargetType, mapping map[string]string, prefixKeys []string) string {
	if v, ok := mapping[t.Name]; ok {
		return v
	}
	for _, k := range prefixKeys {
		prefix := strings.TrimSuffix(k, ".*")
		if t.Package == prefix || strings.HasPrefix(t.Package, prefix+".") {
			return mapping[k]
		}
	}
	return mapping["*"]
}
