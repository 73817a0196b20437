package app

import (
	"context"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/nazliander/dbt-core/internal/core"
)

func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	path := strings.TrimSpace(req.ManifestPath)
	if path == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	writable, err := s.ManifestReader.Read(path)
	if err != nil {
		return InspectResult{}, err
	}
	manifest, err := core.FromWritable(writable)
	if err != nil {
		return InspectResult{}, err
	}
	forward, backward, err := core.BuildEdges(manifest.Nodes())
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{
		NodeCount:  len(manifest.Nodes()),
		MacroCount: len(manifest.Macros()),
		DocCount:   len(manifest.Docs()),
	}
	for uniqueID, children := range forward {
		result.EdgeCount += len(children)
		if len(children) == 0 {
			result.Leaves = append(result.Leaves, uniqueID)
		}
		if len(backward[uniqueID]) == 0 {
			result.Roots = append(result.Roots, uniqueID)
		}
	}
	sort.Strings(result.Roots)
	sort.Strings(result.Leaves)
	return result, nil
}
