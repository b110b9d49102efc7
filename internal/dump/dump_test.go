package dump

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/voxelforge/tsmodelgen/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	src := &model.SourceModel{
		Files: []*model.SourceFile{{
			Path: "/ws/src/room.ts",
			Root: "/ws/src",
			Decls: []*model.SourceDeclaration{{
				Name: "Room",
				Kind: model.DeclInterface,
				File: "/ws/src/room.ts",
				Properties: []*model.SourceProperty{
					{Name: "title", RawType: "string"},
					{Name: "depth", RawType: "number", Optional: true},
				},
			}},
		}},
	}

	path := filepath.Join(t.TempDir(), "dumps", "model.yaml")
	require.NoError(t, Save(src, path))

	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(src, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingYieldsEmpty(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Empty(t, got.Files)
}
