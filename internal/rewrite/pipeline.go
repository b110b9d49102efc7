// Package rewrite applies the configuration-driven passes to the linked
// TargetModel. Each pass is a total function over the whole type set and
// runs fully to completion before the next starts, in fixed order.
package rewrite

import (
	"github.com/voxelforge/tsmodelgen/internal/config"
	"github.com/voxelforge/tsmodelgen/internal/model"
)

// Apply runs all passes in their fixed order.
func Apply(m *model.TargetModel, cfg *config.Config) {
	ResolvePackages(m, cfg)
	AssignEnumInterfaces(m, cfg)
	SubstituteTypeNames(m, cfg)
	OverrideFieldTypes(m, cfg)
	ResolveInheritance(m, cfg)
}
