// Package typemap maps raw TypeScript type expressions to canonical Java
// type expressions. Map is a pure function; resolution of bare identifiers
// against the model happens later, in the linker and rewrite passes.
package typemap

import "strings"

// Canonical target type expressions.
const (
	Text    = "String"
	Opaque  = "Object"
	Decimal = "double"
	Boolean = "boolean"

	// OrderedStringMap is the degraded form of inline object literals.
	OrderedStringMap = "LinkedHashMap<String, Object>"
)

// Map converts a raw type annotation into a canonical target type
// expression. Rules are tried in fixed priority order; the first match wins.
// Primitive results are boxed when optional and unboxed when required.
// Mapping is idempotent on expressions that are already canonical.
func Map(raw string, optional bool) string {
	t := strings.TrimSpace(raw)
	if t == "" {
		return Opaque
	}

	// Inline object literal degrades to a generic ordered string-keyed map.
	if strings.HasPrefix(t, "{") {
		return OrderedStringMap
	}

	if rest, ok := strings.CutPrefix(t, "readonly "); ok {
		return Map(rest, optional)
	}

	if wholeParen(t) {
		return Map(t[1:len(t)-1], optional)
	}

	if inner, ok := genericArg(t, "Partial"); ok {
		return Map(inner, true)
	}

	if strings.HasPrefix(t, "`") {
		return Text
	}

	// Function-type syntax has no target representation.
	if topLevelArrow(t) {
		return Opaque
	}

	// Tuples become ordered lists of opaque elements.
	if strings.HasPrefix(t, "[") {
		return "List<" + Opaque + ">"
	}

	if elem, ok := strings.CutSuffix(t, "[]"); ok {
		return "List<" + Map(elem, true) + ">"
	}
	if inner, ok := genericArg(t, "Array"); ok {
		return "List<" + Map(inner, true) + ">"
	}
	if inner, ok := genericArg(t, "ReadonlyArray"); ok {
		return "List<" + Map(inner, true) + ">"
	}

	if inner, ok := genericArg(t, "Map"); ok {
		if k, v, ok := splitTwo(inner); ok {
			return "Map<" + Map(k, true) + ", " + Map(v, true) + ">"
		}
		return Opaque
	}
	if inner, ok := genericArg(t, "Record"); ok {
		if k, v, ok := splitTwo(inner); ok {
			return "Map<" + Map(k, true) + ", " + Map(v, true) + ">"
		}
		return Opaque
	}

	if isQuoted(t) {
		return Text
	}

	if parts := splitTop(t, '|'); len(parts) > 1 {
		for _, p := range parts {
			if !isTextLike(strings.TrimSpace(p)) {
				return Opaque
			}
		}
		return Text
	}

	if parts := splitTop(t, '&'); len(parts) > 1 {
		return Opaque
	}

	switch t {
	case "string":
		return Text
	case "number":
		if optional {
			return "Double"
		}
		return Decimal
	case "boolean":
		if optional {
			return "Boolean"
		}
		return Boolean
	case "any", "unknown", "object", "void", "never", "null", "undefined", "symbol", "bigint":
		return Opaque
	}

	// A lone uppercase letter is a generic type parameter.
	if len(t) == 1 && t[0] >= 'A' && t[0] <= 'Z' {
		return Opaque
	}

	// Default: keep the bare identifier; it is assumed to name a sibling
	// declaration and is resolved later.
	return t
}

// isTextLike reports whether a union member maps to the text type.
func isTextLike(p string) bool {
	if p == "string" || p == "null" || p == "undefined" {
		return true
	}
	if strings.HasPrefix(p, "`") {
		return true
	}
	return isQuoted(p)
}

// wholeParen reports whether the outermost parentheses enclose the entire
// expression.
func wholeParen(t string) bool {
	if !strings.HasPrefix(t, "(") || !strings.HasSuffix(t, ")") {
		return false
	}
	depth := 0
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i == len(t)-1
			}
		}
	}
	return false
}

func isQuoted(t string) bool {
	if len(t) < 2 {
		return false
	}
	q := t[0]
	return (q == '\'' || q == '"') && t[len(t)-1] == q
}

// genericArg returns the argument text of name<...> when t is exactly that
// form, with the final '>' closing the first '<'.
func genericArg(t, name string) (string, bool) {
	if !strings.HasPrefix(t, name+"<") || !strings.HasSuffix(t, ">") {
		return "", false
	}
	inner := t[len(name)+1 : len(t)-1]
	// Reject forms like "Map<A>,Map<B>" where the final '>' does not close
	// the opening bracket.
	depth := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return "", false
			}
		}
	}
	if depth != 0 {
		return "", false
	}
	return inner, true
}

// splitTwo splits a generic argument list into its two top-level parts.
func splitTwo(inner string) (string, string, bool) {
	parts := splitTop(inner, ',')
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// splitTop splits t on sep at bracket depth zero, skipping quoted runs.
func splitTop(t string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	var quote byte
	for i := 0; i < len(t); i++ {
		c := t[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '<', '[', '(', '{':
			depth++
		case '>', ']', ')', '}':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, t[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, t[start:])
	return parts
}

// topLevelArrow reports a "=>" outside brackets and quotes.
func topLevelArrow(t string) bool {
	depth := 0
	var quote byte
	for i := 0; i+1 < len(t); i++ {
		c := t[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '<', '[', '{':
			depth++
		case '>', ']', '}':
			depth--
		case '=':
			if depth <= 0 && t[i+1] == '>' {
				return true
			}
		}
	}
	return false
}
