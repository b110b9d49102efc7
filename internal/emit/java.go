// Package emit renders the rewritten TargetModel as Java source, one file
// per top-level type, laid out under the output directory by package.
// Rendering is pure string assembly over the frozen model, so emitting the
// same model twice produces byte-identical trees.
package emit

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/voxelforge/tsmodelgen/internal/config"
	"github.com/voxelforge/tsmodelgen/internal/model"
)

const indent = "    "

type Emitter struct {
	cfg    *config.Config
	model  *model.TargetModel
	outDir string
}

func New(cfg *config.Config, m *model.TargetModel, outDir string) *Emitter {
	return &Emitter{cfg: cfg, model: m, outDir: outDir}
}

// EmitAll writes every non-helper type. Helpers are rendered nested inside
// their owner and get no file of their own.
func (e *Emitter) EmitAll() error {
	for _, t := range e.model.Types {
		if t.Helper {
			continue
		}
		if err := e.emitType(t); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) emitType(t *model.TargetType) error {
	dir := filepath.Join(e.outDir, filepath.FromSlash(strings.ReplaceAll(t.Package, ".", "/")))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, t.Name+".java")
	if err := os.WriteFile(path, []byte(e.renderType(t)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (e *Emitter) renderType(t *model.TargetType) string {
	var b strings.Builder

	if t.Package != "" {
		fmt.Fprintf(&b, "package %s;\n\n", t.Package)
	}
	b.WriteString(header(t))

	switch t.Kind {
	case model.KindEnum:
		e.renderEnum(&b, t)
	case model.KindInterface:
		e.renderInterface(&b, t)
	default:
		e.renderClass(&b, t)
	}

	return b.String()
}

// header traces the emitted type back to its source declaration and records
// any base that had to be dropped.
func header(t *model.TargetType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Generated from %s %s in %s. Do not edit.\n",
		t.Keyword, t.Name, filepath.Base(t.SourceFile))
	for _, base := range t.UnresolvedBases {
		fmt.Fprintf(&b, "// Base %s could not be resolved and was dropped; map it via interfaceExtendsMappings to keep it.\n", base)
	}
	return b.String()
}

func (e *Emitter) renderClass(b *strings.Builder, t *model.TargetType) {
	for _, a := range e.cfg.AdditionalClassAnnotations {
		b.WriteString(a + "\n")
	}

	fmt.Fprintf(b, "public class %s", t.Name)
	if t.Extends != nil {
		fmt.Fprintf(b, " extends %s", t.Extends.Display())
	}
	if names := refNames(t.Implements); len(names) > 0 {
		fmt.Fprintf(b, " implements %s", strings.Join(names, ", "))
	}
	b.WriteString(" {\n")

	e.renderFields(b, t, indent)

	for _, h := range e.helpersOf(t) {
		b.WriteString("\n")
		e.renderHelper(b, h)
	}

	b.WriteString("}\n")
}

func (e *Emitter) renderFields(b *strings.Builder, t *model.TargetType, pad string) {
	for _, prop := range t.Properties {
		if !emittable(prop.Name) {
			slog.Warn("omitting field with unusable name", "type", t.Name, "field", prop.Name)
			continue
		}
		for _, a := range e.fieldAnnotations(prop) {
			b.WriteString(pad + a + "\n")
		}
		fmt.Fprintf(b, "%spublic %s %s;\n", pad, e.qualifyType(t, prop.Type), prop.Name)
	}
}

// qualifyType rewrites references to helper types nested in another owner as
// Owner.Helper. Inside the owner (or the helper itself) the bare name stands.
func (e *Emitter) qualifyType(t *model.TargetType, typ string) string {
	var b strings.Builder
	b.Grow(len(typ))

	for i := 0; i < len(typ); {
		if !isIdentByte(typ[i]) {
			b.WriteByte(typ[i])
			i++
			continue
		}
		j := i
		for j < len(typ) && isIdentByte(typ[j]) {
			j++
		}
		token := typ[i:j]
		if !strings.Contains(token, ".") {
			if h, ok := e.model.Lookup(token); ok && h.Helper && h.Owner != t.Name && h.Name != t.Name {
				token = h.Owner + "." + token
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

func (e *Emitter) fieldAnnotations(prop *model.TargetProperty) []string {
	var out []string
	out = append(out, e.cfg.AdditionalFieldAnnotations...)
	if prop.Optional {
		out = append(out, e.cfg.AdditionalOptionalFieldAnnotations...)
	} else {
		out = append(out, e.cfg.AdditionalNonOptionalFieldAnnotations...)
	}
	out = append(out, prop.Annotations...)
	return out
}

// renderHelper renders a synthesized inline-object type as a nested static
// class of its owner.
func (e *Emitter) renderHelper(b *strings.Builder, h *model.TargetType) {
	fmt.Fprintf(b, "%spublic static class %s {\n", indent, h.Name)
	e.renderFields(b, h, indent+indent)
	b.WriteString(indent + "}\n")
}

func (e *Emitter) helpersOf(t *model.TargetType) []*model.TargetType {
	var out []*model.TargetType
	for _, c := range e.model.Types {
		if c.Helper && c.Owner == t.Name {
			out = append(out, c)
		}
	}
	return out
}

func (e *Emitter) renderInterface(b *strings.Builder, t *model.TargetType) {
	fmt.Fprintf(b, "public interface %s", t.Name)

	// An interface merges its base and implemented names into one extends
	// list, since the target language has no implements on interfaces.
	var parents []string
	if t.Extends != nil {
		parents = append(parents, t.Extends.Display())
	}
	parents = append(parents, refNames(t.Implements)...)
	if len(parents) > 0 {
		fmt.Fprintf(b, " extends %s", strings.Join(parents, ", "))
	}
	b.WriteString(" {\n")

	for _, prop := range t.Properties {
		if !emittable(prop.Name) {
			slog.Warn("omitting accessor with unusable name", "type", t.Name, "field", prop.Name)
			continue
		}
		fmt.Fprintf(b, "%s%s get%s();\n", indent, e.qualifyType(t, prop.Type), upperFirst(prop.Name))
	}
	b.WriteString("}\n")
}

// renderEnum classifies the enum's backing at emission time: integer-backed
// when every assigned value parses as an integer, text-backed otherwise.
// Valueless members are numbered sequentially starting at 1.
func (e *Emitter) renderEnum(b *strings.Builder, t *model.TargetType) {
	var members []model.EnumValue
	for _, v := range t.EnumValues {
		if !emittable(v.Name) {
			slog.Warn("omitting enum constant with unusable name", "type", t.Name, "constant", v.Name)
			continue
		}
		members = append(members, v)
	}

	intBacked := true
	for _, v := range members {
		if v.RawValue == "" {
			continue
		}
		if _, err := strconv.Atoi(v.RawValue); err != nil {
			intBacked = false
			break
		}
	}

	fmt.Fprintf(b, "public enum %s", t.Name)
	if names := refNames(t.Implements); len(names) > 0 {
		fmt.Fprintf(b, " implements %s", strings.Join(names, ", "))
	}
	b.WriteString(" {\n")

	// The class-member block below still needs the empty constant list
	// terminated.
	if len(members) == 0 {
		b.WriteString(indent + ";\n")
	}

	counter := 1
	for i, v := range members {
		sep := ","
		if i == len(members)-1 {
			sep = ";"
		}
		value := v.RawValue
		if value == "" {
			value = strconv.Itoa(counter)
		} else if n, err := strconv.Atoi(value); err == nil {
			counter = n
		}
		counter++

		if intBacked {
			fmt.Fprintf(b, "%s%s(%s)%s\n", indent, v.Name, value, sep)
		} else {
			fmt.Fprintf(b, "%s%s(%s)%s\n", indent, v.Name, strconv.Quote(unquote(value)), sep)
		}
	}

	backing := "String"
	if intBacked {
		backing = "int"
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "%sprivate final %s tsIndex;\n\n", indent, backing)
	fmt.Fprintf(b, "%s%s(%s tsIndex) {\n", indent, t.Name, backing)
	fmt.Fprintf(b, "%s%sthis.tsIndex = tsIndex;\n", indent, indent)
	fmt.Fprintf(b, "%s}\n\n", indent)
	fmt.Fprintf(b, "%spublic %s getTsIndex() {\n", indent, backing)
	fmt.Fprintf(b, "%s%sreturn tsIndex;\n", indent, indent)
	fmt.Fprintf(b, "%s}\n", indent)
	b.WriteString("}\n")
}

func refNames(refs []*model.TypeRef) []string {
	var out []string
	for _, r := range refs {
		if name := r.Display(); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') ||
			(s[0] == '"' && s[len(s)-1] == '"') ||
			(s[0] == '`' && s[len(s)-1] == '`') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
