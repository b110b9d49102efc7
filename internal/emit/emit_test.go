package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/voxelforge/tsmodelgen/internal/config"
	"github.com/voxelforge/tsmodelgen/internal/model"
)

func render(t *testing.T, cfg *config.Config, m *model.TargetModel, typ *model.TargetType) string {
	t.Helper()
	return New(cfg, m, t.TempDir()).renderType(typ)
}

func TestRenderClass(t *testing.T) {
	cfg := &config.Config{
		AdditionalClassAnnotations:            []string{"@Generated"},
		AdditionalFieldAnnotations:            []string{"@JsonProperty"},
		AdditionalOptionalFieldAnnotations:    []string{"@Nullable"},
		AdditionalNonOptionalFieldAnnotations: []string{"@Nonnull"},
	}
	typ := &model.TargetType{
		Name: "Room", Kind: model.KindClass, Package: "com.example",
		SourceFile: "/ws/src/room.ts", Keyword: "interface",
		Extends:    &model.TypeRef{Raw: "com.example.Base"},
		Implements: []*model.TypeRef{{Raw: "com.example.Marker"}},
		Properties: []*model.TargetProperty{
			{Name: "title", Type: "String"},
			{Name: "depth", Type: "Double", Optional: true},
		},
	}
	m := &model.TargetModel{}
	m.Add(typ)

	got := render(t, cfg, m, typ)

	want := `package com.example;

// Generated from interface Room in room.ts. Do not edit.
@Generated
public class Room extends com.example.Base implements com.example.Marker {
    @JsonProperty
    @Nonnull
    public String title;
    @JsonProperty
    @Nullable
    public Double depth;
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("renderType mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderClassWithNestedHelper(t *testing.T) {
	owner := &model.TargetType{
		Name: "Room", Kind: model.KindClass, Package: "com.example",
		SourceFile: "/ws/src/room.ts", Keyword: "interface",
		Properties: []*model.TargetProperty{{Name: "exits", Type: "RoomExit"}},
	}
	helper := &model.TargetType{
		Name: "RoomExit", Kind: model.KindClass, Helper: true,
		Owner: "Room", OwnerProp: "exits",
		Properties: []*model.TargetProperty{
			{Name: "n", Type: "boolean"},
			{Name: "e", Type: "boolean"},
		},
	}
	m := &model.TargetModel{}
	m.Add(owner)
	m.Add(helper)

	got := render(t, &config.Config{}, m, owner)
	require.Contains(t, got, "public RoomExit exits;")
	require.Contains(t, got, "    public static class RoomExit {\n        public boolean n;\n        public boolean e;\n    }")
}

// A helper nested in another type is referenced through its owner.
func TestRenderQualifiesForeignHelperReferences(t *testing.T) {
	owner := &model.TargetType{
		Name: "Room", Kind: model.KindClass,
		SourceFile: "/ws/src/room.ts", Keyword: "interface",
		Properties: []*model.TargetProperty{{Name: "exits", Type: "RoomExit"}},
	}
	helper := &model.TargetType{
		Name: "RoomExit", Kind: model.KindClass, Helper: true, Owner: "Room",
	}
	other := &model.TargetType{
		Name: "Map2D", Kind: model.KindClass,
		SourceFile: "/ws/src/map.ts", Keyword: "interface",
		Properties: []*model.TargetProperty{
			{Name: "exits", Type: "RoomExit"},
			{Name: "grid", Type: "List<RoomExit>"},
		},
	}
	m := &model.TargetModel{}
	m.Add(owner)
	m.Add(helper)
	m.Add(other)

	got := render(t, &config.Config{}, m, other)
	require.Contains(t, got, "public Room.RoomExit exits;")
	require.Contains(t, got, "public List<Room.RoomExit> grid;")

	got = render(t, &config.Config{}, m, owner)
	require.Contains(t, got, "public RoomExit exits;", "the owner uses the bare name")
}

func TestRenderClassDroppedBaseNote(t *testing.T) {
	typ := &model.TargetType{
		Name: "Orphan", Kind: model.KindClass,
		SourceFile: "/ws/src/o.ts", Keyword: "class",
		UnresolvedBases: []string{"Mystery"},
	}
	m := &model.TargetModel{}
	m.Add(typ)

	got := render(t, &config.Config{}, m, typ)
	require.Contains(t, got, "// Base Mystery could not be resolved and was dropped; map it via interfaceExtendsMappings to keep it.")
}

func TestRenderClassOmitsReservedFieldNames(t *testing.T) {
	typ := &model.TargetType{
		Name: "Odd", Kind: model.KindClass,
		SourceFile: "/ws/src/odd.ts", Keyword: "interface",
		Properties: []*model.TargetProperty{
			{Name: "class", Type: "String"},
			{Name: "max-depth", Type: "double"},
			{Name: "fine", Type: "String"},
		},
	}
	m := &model.TargetModel{}
	m.Add(typ)

	got := render(t, &config.Config{}, m, typ)
	require.NotContains(t, got, "public String class;")
	require.NotContains(t, got, "max-depth")
	require.Contains(t, got, "public String fine;")
}

func TestRenderEnumOmitsReservedConstantNames(t *testing.T) {
	typ := &model.TargetType{
		Name: "Kw", Kind: model.KindEnum,
		SourceFile: "/ws/src/kw.ts", Keyword: "enum",
		EnumValues: []model.EnumValue{
			{Name: "new", RawValue: "1"},
			{Name: "Ok", RawValue: "2"},
			{Name: "class", RawValue: "3"},
		},
	}
	m := &model.TargetModel{}
	m.Add(typ)

	got := render(t, &config.Config{}, m, typ)
	require.NotContains(t, got, "new(")
	require.NotContains(t, got, "class(")
	require.Contains(t, got, "    Ok(2);", "the last surviving constant takes the terminator")
	require.Contains(t, got, "public int getTsIndex()")
}

func TestRenderEnumWithoutSurvivingConstants(t *testing.T) {
	typ := &model.TargetType{
		Name: "Empty", Kind: model.KindEnum,
		SourceFile: "/ws/src/e.ts", Keyword: "enum",
		EnumValues: []model.EnumValue{{Name: "void", RawValue: "1"}},
	}
	m := &model.TargetModel{}
	m.Add(typ)

	got := render(t, &config.Config{}, m, typ)
	require.NotContains(t, got, "void(")
	require.Contains(t, got, "public enum Empty {\n    ;\n")
	require.Contains(t, got, "private final int tsIndex;")
}

func TestRenderEnumIntBacked(t *testing.T) {
	typ := &model.TargetType{
		Name: "Direction", Kind: model.KindEnum,
		SourceFile: "/ws/src/d.ts", Keyword: "enum",
		Implements: []*model.TypeRef{{Raw: "com.example.Marker"}},
		EnumValues: []model.EnumValue{
			{Name: "North", RawValue: "1"},
			{Name: "South", RawValue: "2"},
		},
	}
	m := &model.TargetModel{}
	m.Add(typ)

	got := render(t, &config.Config{}, m, typ)
	require.Contains(t, got, "public enum Direction implements com.example.Marker {")
	require.Contains(t, got, "    North(1),\n    South(2);")
	require.Contains(t, got, "private final int tsIndex;")
	require.Contains(t, got, "public int getTsIndex()")
}

func TestRenderEnumTextBacked(t *testing.T) {
	typ := &model.TargetType{
		Name: "Mood", Kind: model.KindEnum,
		SourceFile: "/ws/src/m.ts", Keyword: "enum",
		EnumValues: []model.EnumValue{
			{Name: "Happy", RawValue: "'happy'"},
			{Name: "Sad", RawValue: "'sad'"},
		},
	}
	m := &model.TargetModel{}
	m.Add(typ)

	got := render(t, &config.Config{}, m, typ)
	require.Contains(t, got, `Happy("happy"),`)
	require.Contains(t, got, `Sad("sad");`)
	require.Contains(t, got, "private final String tsIndex;")
}

// Members without assigned values number sequentially starting at one, and a
// single non-integer value switches the whole enum to text backing.
func TestRenderEnumValuePolicies(t *testing.T) {
	valueless := &model.TargetType{
		Name: "Rank", Kind: model.KindEnum,
		SourceFile: "/ws/src/r.ts", Keyword: "enum",
		EnumValues: []model.EnumValue{
			{Name: "First"}, {Name: "Second"}, {Name: "Third"},
		},
	}
	mixed := &model.TargetType{
		Name: "Mixed", Kind: model.KindEnum,
		SourceFile: "/ws/src/x.ts", Keyword: "enum",
		EnumValues: []model.EnumValue{
			{Name: "A", RawValue: "1"},
			{Name: "B", RawValue: "'why'"},
		},
	}
	m := &model.TargetModel{}
	m.Add(valueless)
	m.Add(mixed)

	got := render(t, &config.Config{}, m, valueless)
	require.Contains(t, got, "First(1),\n    Second(2),\n    Third(3);")
	require.Contains(t, got, "private final int tsIndex;")

	got = render(t, &config.Config{}, m, mixed)
	require.Contains(t, got, `A("1"),`)
	require.Contains(t, got, `B("why");`)
	require.Contains(t, got, "private final String tsIndex;")
}

func TestRenderInterfaceAccessors(t *testing.T) {
	typ := &model.TargetType{
		Name: "Readable", Kind: model.KindInterface,
		SourceFile: "/ws/src/r.ts", Keyword: "interface",
		Extends:    &model.TypeRef{Raw: "com.example.Base"},
		Implements: []*model.TypeRef{{Raw: "com.example.Marker"}},
		Properties: []*model.TargetProperty{{Name: "title", Type: "String"}},
	}
	m := &model.TargetModel{}
	m.Add(typ)

	got := render(t, &config.Config{}, m, typ)
	require.Contains(t, got, "public interface Readable extends com.example.Base, com.example.Marker {")
	require.Contains(t, got, "    String getTitle();")
}

func TestEmitAllLaysOutByPackage(t *testing.T) {
	typ := &model.TargetType{
		Name: "Room", Kind: model.KindClass, Package: "com.example.game",
		SourceFile: "/ws/src/room.ts", Keyword: "interface",
	}
	helper := &model.TargetType{
		Name: "RoomExit", Kind: model.KindClass, Helper: true, Owner: "Room",
		Package: "com.example.game",
	}
	m := &model.TargetModel{}
	m.Add(typ)
	m.Add(helper)

	outDir := t.TempDir()
	require.NoError(t, New(&config.Config{}, m, outDir).EmitAll())

	data, err := os.ReadFile(filepath.Join(outDir, "com", "example", "game", "Room.java"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "package com.example.game;"))

	_, err = os.Stat(filepath.Join(outDir, "com", "example", "game", "RoomExit.java"))
	require.True(t, os.IsNotExist(err), "helpers get no file of their own")
}
