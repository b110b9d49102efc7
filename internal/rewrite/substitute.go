package rewrite

import (
	"strings"

	"github.com/voxelforge/tsmodelgen/internal/config"
	"github.com/voxelforge/tsmodelgen/internal/model"
)

// SubstituteTypeNames rewrites bare identifier tokens inside every property
// type and every unresolved base name according to the configured type
// mappings. Tokens are matched whole, so List<Foo> rewrites only Foo, and
// already-qualified dotted names are left untouched.
func SubstituteTypeNames(m *model.TargetModel, cfg *config.Config) {
	if len(cfg.TypeMappings) == 0 {
		return
	}

	for _, t := range m.Types {
		if t.Extends != nil && t.Extends.Resolved == nil {
			t.Extends.Raw = rewriteTokens(t.Extends.Raw, cfg.TypeMappings)
		}
		for _, ref := range t.Implements {
			if ref.Resolved == nil {
				ref.Raw = rewriteTokens(ref.Raw, cfg.TypeMappings)
			}
		}
		for _, prop := range t.Properties {
			prop.Type = rewriteTokens(prop.Type, cfg.TypeMappings)
		}
	}
}

// rewriteTokens scans expr for identifier runs and replaces each mapped
// undotted token, preserving all surrounding punctuation.
func rewriteTokens(expr string, mappings map[string]string) string {
	var b strings.Builder
	b.Grow(len(expr))

	for i := 0; i < len(expr); {
		if !isIdentByte(expr[i]) {
			b.WriteByte(expr[i])
			i++
			continue
		}
		j := i
		for j < len(expr) && isIdentByte(expr[j]) {
			j++
		}
		token := expr[i:j]
		if !strings.Contains(token, ".") {
			if mapped, ok := mappings[token]; ok {
				token = mapped
			}
		}
		b.WriteString(token)
		i = j
	}
	return b.String()
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c == '.' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
