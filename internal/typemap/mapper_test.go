package typemap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMap(ttt *testing.T) {
	tests := []struct {
		name     string
		raw      string
		optional bool
		want     string
	}{
		{name: "empty", raw: "", want: "Object"},
		{name: "inline object degrades", raw: "{ a: string; b: number }", want: "LinkedHashMap<String, Object>"},
		{name: "readonly modifier stripped", raw: "readonly string", want: "String"},
		{name: "partial forces boxing", raw: "Partial<number>", want: "Double"},
		{name: "template literal", raw: "`${string}-id`", want: "String"},
		{name: "function type", raw: "(a: string) => void", want: "Object"},
		{name: "tuple", raw: "[string, number]", want: "List<Object>"},
		{name: "array suffix", raw: "number[]", want: "List<Double>"},
		{name: "array generic", raw: "Array<number>", want: "List<Double>"},
		{name: "readonly array generic", raw: "ReadonlyArray<number>", want: "List<Double>"},
		{name: "map generic", raw: "Map<string, number>", want: "Map<String, Double>"},
		{name: "record generic", raw: "Record<string, Foo>", want: "Map<String, Foo>"},
		{name: "string literal", raw: "'active'", want: "String"},
		{name: "all-text union", raw: "'a' | 'b' | 'c'", want: "String"},
		{name: "union with null stays text", raw: "string | null | undefined", want: "String"},
		{name: "mixed union", raw: "'a' | number", want: "Object"},
		{name: "union arm with generic", raw: "Map<string, number> | string", want: "Object"},
		{name: "intersection", raw: "A & B", want: "Object"},
		{name: "string primitive", raw: "string", want: "String"},
		{name: "number required", raw: "number", want: "double"},
		{name: "number optional", raw: "number", optional: true, want: "Double"},
		{name: "boolean required", raw: "boolean", want: "boolean"},
		{name: "boolean optional", raw: "boolean", optional: true, want: "Boolean"},
		{name: "any", raw: "any", want: "Object"},
		{name: "unknown", raw: "unknown", want: "Object"},
		{name: "type parameter", raw: "T", want: "Object"},
		{name: "bare identifier kept", raw: "GameTile", want: "GameTile"},
		{name: "nested array", raw: "string[][]", want: "List<List<String>>"},
		{name: "array of literal union", raw: "('a' | 'b')[]", want: "List<String>"},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			got := Map(tt.raw, tt.optional)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Map(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

// Arrays written three ways must map identically.
func TestMapArrayFormsAgree(t *testing.T) {
	for _, elem := range []string{"string", "number", "GameTile"} {
		suffix := Map(elem+"[]", false)
		generic := Map("Array<"+elem+">", false)
		ro := Map("ReadonlyArray<"+elem+">", false)
		require.Equal(t, suffix, generic, "Array<%s>", elem)
		require.Equal(t, suffix, ro, "ReadonlyArray<%s>", elem)
	}
}

// Mapping an already-canonical expression must be a no-op.
func TestMapIdempotent(t *testing.T) {
	inputs := []string{
		"", "string", "number", "boolean", "any",
		"string[]", "Array<number>", "Map<string, Foo>",
		"'a' | 'b'", "A & B", "{ a: string }", "GameTile",
	}
	for _, raw := range inputs {
		for _, optional := range []bool{false, true} {
			once := Map(raw, optional)
			twice := Map(once, optional)
			require.Equal(t, once, twice, "Map(%q, %v) not stable", raw, optional)
		}
	}
}
