package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazliander/dbt-core/internal/types"
)

func TestManifestFileAdapterWriteThenRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target", "manifest.json")

	manifest := types.WritableManifest{
		Nodes: map[string]types.ParsedNode{
			"model.jaffle.customers": {
				UniqueID:     "model.jaffle.customers",
				Name:         "customers",
				PackageName:  "jaffle",
				ResourceType: types.NodeTypeModel,
				FQN:          []string{"jaffle", "customers"},
				Tags:         []string{},
				Config:       map[string]any{},
				DependsOn:    types.DependsOn{Nodes: []string{}, Macros: []string{}},
			},
		},
		Macros:      map[string]types.ParsedMacro{},
		Docs:        map[string]types.ParsedDocumentation{},
		GeneratedAt: "2026-08-01T12:00:00Z",
		ParentMap:   map[string][]string{"model.jaffle.customers": {}},
		ChildMap:    map[string][]string{"model.jaffle.customers": {}},
	}

	adapter := NewManifestFileAdapter()
	require.NoError(t, adapter.Write(path, manifest))

	loaded, err := adapter.Read(path)
	require.NoError(t, err)
	if diff := cmp.Diff(manifest, loaded); diff != "" {
		t.Fatalf("manifest changed across write/read (-want +got):\n%s", diff)
	}
}

func TestManifestFileAdapterRejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	content := `{"nodes": {}, "macros": {}, "docs": {}, "surprise": true}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	adapter := NewManifestFileAdapter()
	_, err := adapter.Read(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestManifestFileAdapterRequiresCollections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	content := `{"nodes": {}, "macros": {}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	adapter := NewManifestFileAdapter()
	_, err := adapter.Read(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestManifestFileAdapterMissingFile(t *testing.T) {
	adapter := NewManifestFileAdapter()
	_, err := adapter.Read(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
