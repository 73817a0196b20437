package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazliander/dbt-core/internal/types"
)

func testMacro(name string, packageName string, resourceType types.NodeType) *types.ParsedMacro {
	return &types.ParsedMacro{
		UniqueID:     "macro." + packageName + "." + name,
		Name:         name,
		PackageName:  packageName,
		ResourceType: resourceType,
	}
}

func TestFindRefableByName(t *testing.T) {
	manifest := NewManifest(testGeneratedAt)
	model := modelNode("customers", "jaffle")
	seed := &types.ParsedNode{
		UniqueID:     "seed.jaffle.countries",
		Name:         "countries",
		PackageName:  "jaffle",
		ResourceType: types.NodeTypeSeed,
		DependsOn:    types.DependsOn{Nodes: []string{}},
	}
	analysis := &types.ParsedNode{
		UniqueID:     "analysis.jaffle.revenue",
		Name:         "revenue",
		PackageName:  "jaffle",
		ResourceType: types.NodeTypeAnalysis,
		DependsOn:    types.DependsOn{Nodes: []string{}},
	}
	require.NoError(t, manifest.AddNodes(t.Context(), []*types.ParsedNode{model, seed, analysis}))

	t.Run("model in package", func(t *testing.T) {
		assert.Same(t, model, manifest.FindRefableByName("customers", "jaffle"))
	})
	t.Run("seed any package", func(t *testing.T) {
		assert.Same(t, seed, manifest.FindRefableByName("countries", ""))
	})
	t.Run("wrong package", func(t *testing.T) {
		assert.Nil(t, manifest.FindRefableByName("customers", "analytics"))
	})
	t.Run("analysis is not refable", func(t *testing.T) {
		assert.Nil(t, manifest.FindRefableByName("revenue", ""))
	})
}

func TestFindRefableByNameScansInInsertionOrder(t *testing.T) {
	manifest := NewManifest(testGeneratedAt)
	second := modelNode("shared", "zpkg")
	first := modelNode("shared", "apkg")
	// Insertion order deliberately disagrees with lexicographic order.
	require.NoError(t, manifest.AddNodes(t.Context(), []*types.ParsedNode{second, first}))

	assert.Same(t, second, manifest.FindRefableByName("shared", ""))
}

func TestFindMacroAndOperationByName(t *testing.T) {
	manifest := NewManifest(testGeneratedAt)
	macro := testMacro("date_spine", "dbt_utils", types.NodeTypeMacro)
	operation := testMacro("refresh_grants", "jaffle", types.NodeTypeOperation)
	require.NoError(t, manifest.AddMacros(t.Context(), []*types.ParsedMacro{macro, operation}))

	assert.Same(t, macro, manifest.FindMacroByName("date_spine", "dbt_utils"))
	assert.Nil(t, manifest.FindMacroByName("date_spine", "jaffle"))
	assert.Nil(t, manifest.FindMacroByName("refresh_grants", ""))

	assert.Same(t, operation, manifest.FindOperationByName("refresh_grants", ""))
	assert.Nil(t, manifest.FindOperationByName("date_spine", ""))
}

func TestFindDocByName(t *testing.T) {
	manifest := NewManifest(testGeneratedAt)
	overview := &types.ParsedDocumentation{
		UniqueID:    "pkg1.overview",
		Name:        "overview",
		PackageName: "pkg1",
	}
	require.NoError(t, manifest.AddDocs(t.Context(), []*types.ParsedDocumentation{overview}))

	t.Run("matching package", func(t *testing.T) {
		doc, err := manifest.FindDocByName("overview", "pkg1")
		require.NoError(t, err)
		assert.Same(t, overview, doc)
	})
	t.Run("other package", func(t *testing.T) {
		doc, err := manifest.FindDocByName("overview", "pkg2")
		require.NoError(t, err)
		assert.Nil(t, doc)
	})
	t.Run("any package", func(t *testing.T) {
		doc, err := manifest.FindDocByName("overview", "")
		require.NoError(t, err)
		assert.Same(t, overview, doc)
	})
}

func TestFindDocByNameInvalidUniqueID(t *testing.T) {
	manifest := NewManifest(testGeneratedAt)
	broken := &types.ParsedDocumentation{
		UniqueID:    "a.b.c",
		Name:        "c",
		PackageName: "a.b",
	}
	require.NoError(t, manifest.AddDocs(t.Context(), []*types.ParsedDocumentation{broken}))

	_, err := manifest.FindDocByName("c", "")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, builderMessage(t, err), "'.'")
}

func TestGetMaterializationMacroDirect(t *testing.T) {
	manifest := NewManifest(testGeneratedAt)
	snowflake := testMacro("materialization_table_snowflake", "dbt_snowflake", types.NodeTypeMacro)
	fallback := testMacro("materialization_table_default", "dbt", types.NodeTypeMacro)
	require.NoError(t, manifest.AddMacros(t.Context(), []*types.ParsedMacro{snowflake, fallback}))

	assert.Same(t, snowflake, manifest.GetMaterializationMacro("table", "snowflake"))
}

func TestGetMaterializationMacroFallsBackToDefault(t *testing.T) {
	manifest := NewManifest(testGeneratedAt)
	fallback := testMacro("materialization_table_default", "dbt", types.NodeTypeMacro)
	require.NoError(t, manifest.AddMacros(t.Context(), []*types.ParsedMacro{fallback}))

	assert.Same(t, fallback, manifest.GetMaterializationMacro("table", "snowflake"))
}

func TestGetMaterializationMacroNoFallbackWithoutAdapter(t *testing.T) {
	manifest := NewManifest(testGeneratedAt)
	specific := testMacro("materialization_table_snowflake", "dbt_snowflake", types.NodeTypeMacro)
	require.NoError(t, manifest.AddMacros(t.Context(), []*types.ParsedMacro{specific}))

	// Empty adapter resolves against the default name only; a single
	// direct lookup, no retry.
	assert.Nil(t, manifest.GetMaterializationMacro("table", ""))
	assert.Nil(t, manifest.GetMaterializationMacro("table", "default"))
}

func TestGetMaterializationMacroNotFound(t *testing.T) {
	manifest := NewManifest(testGeneratedAt)
	assert.Nil(t, manifest.GetMaterializationMacro("incremental", "postgres"))
}
