package rewrite

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/voxelforge/tsmodelgen/internal/config"
	"github.com/voxelforge/tsmodelgen/internal/model"
)

// ResolvePackages assigns every type its target package. The type's source
// directory is computed two ways: relative to the root that contains it and
// relative to the deepest common ancestor of all roots. Package rules are
// tested in declared order against the per-root path first, then against
// the common-ancestor path; the first matching rule wins. Without a match
// the package is the base package plus the translated relative path.
func ResolvePackages(m *model.TargetModel, cfg *config.Config) {
	common := commonAncestor(modelRoots(m))

	for _, t := range m.Types {
		if t.Helper {
			continue
		}
		dir := filepath.Dir(t.SourceFile)
		perRoot := relSlash(t.SourceRoot, dir)
		perCommon := relSlash(common, dir)
		t.Package = packageFor(cfg, perRoot, perCommon)
	}

	// Helpers live in their owner's package.
	for _, t := range m.Types {
		if !t.Helper {
			continue
		}
		if owner, ok := m.Lookup(t.Owner); ok {
			t.Package = owner.Package
		} else {
			t.Package = cfg.BasePackage
		}
	}
}

func packageFor(cfg *config.Config, perRoot, perCommon string) string {
	for _, path := range []string{perRoot, perCommon} {
		if path == "" {
			continue
		}
		for _, rule := range cfg.PackageRules {
			if suffixMatch(path, rule.DirEndsWith) {
				return rule.Pkg
			}
		}
	}

	if perRoot == "" || perRoot == "." {
		return cfg.BasePackage
	}
	translated := translatePath(perRoot)
	if cfg.BasePackage == "" {
		return translated
	}
	return cfg.BasePackage + "." + translated
}

// suffixMatch matches a directory suffix on whole path segments.
func suffixMatch(path, suffix string) bool {
	s := strings.Trim(filepath.ToSlash(suffix), "/")
	if s == "" {
		return false
	}
	return path == s || strings.HasSuffix(path, "/"+s)
}

// translatePath turns a relative directory into package segments:
// lower-cased, with characters illegal in package names replaced.
func translatePath(rel string) string {
	segs := strings.Split(rel, "/")
	for i, seg := range segs {
		segs[i] = sanitizeSegment(strings.ToLower(seg))
	}
	return strings.Join(segs, ".")
}

func sanitizeSegment(seg string) string {
	var b strings.Builder
	for i, r := range seg {
		switch {
		case unicode.IsLetter(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func relSlash(base, dir string) string {
	if base == "" {
		return ""
	}
	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return ""
	}
	if rel == "." {
		return "."
	}
	return filepath.ToSlash(rel)
}

// modelRoots collects the distinct configured roots present in the model,
// in first-seen order.
func modelRoots(m *model.TargetModel) []string {
	var roots []string
	seen := make(map[string]bool)
	for _, t := range m.Types {
		if t.SourceRoot == "" || seen[t.SourceRoot] {
			continue
		}
		seen[t.SourceRoot] = true
		roots = append(roots, t.SourceRoot)
	}
	return roots
}

// commonAncestor returns the deepest directory shared by all roots.
func commonAncestor(roots []string) string {
	if len(roots) == 0 {
		return ""
	}
	parts := strings.Split(filepath.ToSlash(filepath.Clean(roots[0])), "/")
	for _, root := range roots[1:] {
		other := strings.Split(filepath.ToSlash(filepath.Clean(root)), "/")
		n := len(parts)
		if len(other) < n {
			n = len(other)
		}
		i := 0
		for i < n && parts[i] == other[i] {
			i++
		}
		parts = parts[:i]
	}
	return filepath.FromSlash(strings.Join(parts, "/"))
}
