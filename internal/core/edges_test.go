package core

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazliander/dbt-core/internal/types"
)

// builderMessage extracts the structured message from an errbuilder
// error for content assertions.
func builderMessage(t *testing.T, err error) string {
	t.Helper()
	var builder *errbuilder.ErrBuilder
	require.True(t, errors.As(err, &builder))
	return builder.Msg
}

func modelNode(name string, packageName string, deps ...string) *types.ParsedNode {
	return &types.ParsedNode{
		UniqueID:     "model." + packageName + "." + name,
		Name:         name,
		PackageName:  packageName,
		ResourceType: types.NodeTypeModel,
		FQN:          []string{packageName, name},
		Tags:         []string{},
		Config:       map[string]any{},
		DependsOn:    types.DependsOn{Nodes: deps, Macros: []string{}},
	}
}

func TestBuildEdgesChain(t *testing.T) {
	a := modelNode("a", "pkg")
	b := modelNode("b", "pkg", a.UniqueID)
	c := modelNode("c", "pkg", a.UniqueID, b.UniqueID)

	forward, backward, err := BuildEdges([]*types.ParsedNode{a, b, c})
	require.NoError(t, err)

	wantForward := map[string][]string{
		a.UniqueID: {b.UniqueID, c.UniqueID},
		b.UniqueID: {c.UniqueID},
		c.UniqueID: {},
	}
	wantBackward := map[string][]string{
		a.UniqueID: {},
		b.UniqueID: {a.UniqueID},
		c.UniqueID: {a.UniqueID, b.UniqueID},
	}
	if diff := cmp.Diff(wantForward, forward); diff != "" {
		t.Fatalf("unexpected forward edges (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantBackward, backward); diff != "" {
		t.Fatalf("unexpected backward edges (-want +got):\n%s", diff)
	}
}

func TestBuildEdgesEveryNodeHasForwardEntry(t *testing.T) {
	nodes := []*types.ParsedNode{
		modelNode("isolated", "pkg"),
		modelNode("leaf", "pkg"),
	}
	forward, backward, err := BuildEdges(nodes)
	require.NoError(t, err)
	for _, node := range nodes {
		entry, ok := forward[node.UniqueID]
		require.True(t, ok, "missing forward entry for %s", node.UniqueID)
		assert.Empty(t, entry)
		assert.Equal(t, node.DependsOn.Nodes, backward[node.UniqueID])
	}
}

func TestBuildEdgesBackwardIsACopy(t *testing.T) {
	a := modelNode("a", "pkg")
	b := modelNode("b", "pkg", a.UniqueID)

	_, backward, err := BuildEdges([]*types.ParsedNode{a, b})
	require.NoError(t, err)

	backward[b.UniqueID][0] = "mutated"
	assert.Equal(t, []string{a.UniqueID}, b.DependsOn.Nodes)
}

func TestBuildEdgesMirrorProperty(t *testing.T) {
	a := modelNode("a", "pkg")
	b := modelNode("b", "pkg", a.UniqueID)
	c := modelNode("c", "other", a.UniqueID, b.UniqueID)

	forward, backward, err := BuildEdges([]*types.ParsedNode{a, b, c})
	require.NoError(t, err)

	for _, node := range []*types.ParsedNode{a, b, c} {
		for _, dependencyID := range node.DependsOn.Nodes {
			assert.Contains(t, forward[dependencyID], node.UniqueID)
			assert.Contains(t, backward[node.UniqueID], dependencyID)
		}
	}
}

func TestBuildEdgesDanglingDependency(t *testing.T) {
	b := modelNode("b", "pkg", "model.pkg.missing")

	_, _, err := BuildEdges([]*types.ParsedNode{b})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, builderMessage(t, err), "model.pkg.missing")
}
