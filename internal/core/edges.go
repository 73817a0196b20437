package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/nazliander/dbt-core/internal/types"
)

// BuildEdges derives the forward and backward dependency adjacency for
// the given nodes. forward maps each unique ID to the IDs that depend
// on it; backward maps each unique ID to a copy of its depends_on list.
// Every node appears in forward, including nodes nobody depends on.
//
// A dependency on an ID absent from the node set is a precondition
// violation of upstream construction and fails fast rather than
// silently dropping the edge.
func BuildEdges(nodes []*types.ParsedNode) (map[string][]string, map[string][]string, error) {
	forward := make(map[string][]string, len(nodes))
	backward := make(map[string][]string, len(nodes))
	for _, node := range nodes {
		forward[node.UniqueID] = []string{}
	}
	for _, node := range nodes {
		backward[node.UniqueID] = append([]string{}, node.DependsOn.Nodes...)
		for _, dependencyID := range node.DependsOn.Nodes {
			if _, ok := forward[dependencyID]; !ok {
				return nil, nil, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf(
						"node %s depends on %s which is not in the manifest",
						node.UniqueID, dependencyID,
					))
			}
			forward[dependencyID] = append(forward[dependencyID], node.UniqueID)
		}
	}
	return forward, backward, nil
}
