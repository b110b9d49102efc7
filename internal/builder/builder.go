// Package builder constructs the TargetModel from a parsed SourceModel in
// two passes: creation of one TargetType per declaration, then linking of
// captured raw names against the by-name index. Names that do not resolve
// stay raw for the rewrite stage to adjudicate.
package builder

import (
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/voxelforge/tsmodelgen/internal/model"
	"github.com/voxelforge/tsmodelgen/internal/typemap"
)

type Builder struct {
	src *model.SourceModel
	out *model.TargetModel
}

func New(src *model.SourceModel) *Builder {
	return &Builder{src: src}
}

// Build runs the creation pass over every declaration in stable order, then
// the linking pass.
func (b *Builder) Build() *model.TargetModel {
	b.out = &model.TargetModel{Index: make(map[string]*model.TargetType)}

	for _, f := range b.src.Files {
		for _, d := range f.Decls {
			b.createType(f, d)
		}
	}
	b.link()

	return b.out
}

// createType materializes one declaration. Interfaces become mutable classes
// because the target representation carries state; enums stay enums; type
// aliases become classes wrapping their target.
func (b *Builder) createType(f *model.SourceFile, d *model.SourceDeclaration) {
	t := &model.TargetType{
		Name:       d.Name,
		SourceFile: d.File,
		SourceRoot: f.Root,
		Keyword:    string(d.Kind),
	}

	switch d.Kind {
	case model.DeclEnum:
		t.Kind = model.KindEnum
		for _, m := range d.Members {
			t.EnumValues = append(t.EnumValues, model.EnumValue{Name: m.Name, RawValue: m.RawValue})
		}

	case model.DeclInterface, model.DeclClass:
		t.Kind = model.KindClass
		t.FromInterface = d.Kind == model.DeclInterface
		// Multiple source bases are truncated to the first.
		if len(d.Extends) > 0 {
			t.Extends = &model.TypeRef{Raw: d.Extends[0]}
		}
		for _, name := range d.Implements {
			t.Implements = append(t.Implements, &model.TypeRef{Raw: name})
		}
		b.addProperties(t, d.Properties)

	case model.DeclTypeAlias:
		t.Kind = model.KindClass
		t.FromAlias = true
		if len(d.Properties) > 0 {
			b.addProperties(t, d.Properties)
		} else {
			// A non-object alias keeps a single field holding the mapped
			// target so the alias remains a directly usable unit.
			typ := typemap.Text
			if d.AliasTarget != "" {
				typ = typemap.Map(d.AliasTarget, false)
			}
			t.Properties = append(t.Properties, &model.TargetProperty{Name: "value", Type: typ})
		}

	default:
		return
	}

	b.out.Add(t)
}

// addProperties maps each source property, deduplicating on name with the
// first occurrence winning.
func (b *Builder) addProperties(t *model.TargetType, props []*model.SourceProperty) {
	seen := make(map[string]bool, len(props))
	for _, sp := range props {
		if sp == nil || seen[sp.Name] {
			continue
		}
		seen[sp.Name] = true
		t.Properties = append(t.Properties, b.buildProperty(t, sp))
	}
}

// buildProperty resolves one property's type: the override pragma wins
// outright, recognized inline-object shapes synthesize a helper type, and
// everything else goes through the mapper.
func (b *Builder) buildProperty(owner *model.TargetType, sp *model.SourceProperty) *model.TargetProperty {
	tp := &model.TargetProperty{Name: sp.Name, Optional: sp.Optional}

	switch {
	case sp.Override != "":
		tp.Type = sp.Override

	case strings.HasPrefix(strings.TrimSpace(sp.RawType), "{"):
		if entries, ok := objectEntries(sp.RawType); ok && directionalShape(entries) {
			tp.Type = b.ensureHelper(owner, sp, entries)
		} else {
			tp.Type = typemap.Map(sp.RawType, sp.Optional)
		}

	default:
		tp.Type = typemap.Map(sp.RawType, sp.Optional)
	}

	return tp
}

// ensureHelper synthesizes (once) a nested helper type for a recognized
// inline-object shape and returns its name. Helpers are keyed
// <OwnerName><ShapeSuffix>; at most one helper exists per derived name.
func (b *Builder) ensureHelper(owner *model.TargetType, sp *model.SourceProperty, entries []objectEntry) string {
	name := owner.Name + shapeSuffix(sp.Name)
	if _, exists := b.out.Lookup(name); exists {
		return name
	}

	helper := &model.TargetType{
		Name:       name,
		Kind:       model.KindClass,
		SourceFile: owner.SourceFile,
		SourceRoot: owner.SourceRoot,
		Keyword:    "object",
		Helper:     true,
		Owner:      owner.Name,
		OwnerProp:  sp.Name,
	}
	for _, e := range entries {
		helper.Properties = append(helper.Properties, &model.TargetProperty{
			Name:     e.name,
			Type:     typemap.Map(e.rawType, e.optional),
			Optional: e.optional,
		})
	}
	b.out.Add(helper)

	return name
}

// shapeSuffix derives the helper suffix from the owning property name:
// singularized, first letter upper-cased.
func shapeSuffix(propName string) string {
	s := inflection.Singular(propName)
	if s == "" {
		s = propName
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// link builds nothing new; it resolves every captured raw name against the
// index, leaving non-matches raw.
func (b *Builder) link() {
	for _, t := range b.out.Types {
		if t.Extends != nil && t.Extends.Resolved == nil {
			if res, ok := b.out.Lookup(t.Extends.Raw); ok {
				t.Extends.Resolved = res
			}
		}
		for _, ref := range t.Implements {
			if ref.Resolved == nil {
				if res, ok := b.out.Lookup(ref.Raw); ok {
					ref.Resolved = res
				}
			}
		}
	}
}

// -----------------------------------------------------------------------------
// Inline object literal handling
// -----------------------------------------------------------------------------

type objectEntry struct {
	name     string
	rawType  string
	optional bool
}

// objectEntries splits an inline `{ ... }` literal into name/type pairs.
// Nested braces and generics are respected; anything unrecognizable yields
// ok=false so the caller degrades to the generic map type.
func objectEntries(raw string) ([]objectEntry, bool) {
	t := strings.TrimSpace(raw)
	if !strings.HasPrefix(t, "{") || !strings.HasSuffix(t, "}") {
		return nil, false
	}
	inner := t[1 : len(t)-1]

	var entries []objectEntry
	for _, part := range splitMembers(inner) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx := topLevelColon(part)
		if idx < 0 {
			return nil, false
		}
		name := strings.TrimSpace(part[:idx])
		typ := strings.TrimSpace(part[idx+1:])
		optional := strings.HasSuffix(name, "?")
		name = strings.TrimSuffix(name, "?")
		if name == "" || typ == "" {
			return nil, false
		}
		entries = append(entries, objectEntry{name: name, rawType: typ, optional: optional})
	}
	if len(entries) == 0 {
		return nil, false
	}
	return entries, true
}

// directionalShape recognizes the recurring four-directional n/e/s/w bundle.
func directionalShape(entries []objectEntry) bool {
	if len(entries) != 4 {
		return false
	}
	want := map[string]bool{"n": false, "e": false, "s": false, "w": false}
	for _, e := range entries {
		seen, ok := want[e.name]
		if !ok || seen {
			return false
		}
		want[e.name] = true
	}
	return true
}

// splitMembers splits object literal members on ';' and ',' at depth zero.
func splitMembers(inner string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '{', '<', '[', '(':
			depth++
		case '}', '>', ']', ')':
			depth--
		case ';', ',':
			if depth == 0 {
				parts = append(parts, inner[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, inner[start:])
	return parts
}

func topLevelColon(part string) int {
	depth := 0
	for i := 0; i < len(part); i++ {
		switch part[i] {
		case '{', '<', '[', '(':
			depth++
		case '}', '>', ']', ')':
			depth--
		case ':':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
