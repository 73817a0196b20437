package ports

import "github.com/nazliander/dbt-core/internal/types"

// ArtifactSourcePort loads parsed node, macro, and doc records produced
// by the project parser. Records arrive fully populated: unique IDs,
// packages, names, resource types, and dependency lists are the
// parser's responsibility.
type ArtifactSourcePort interface {
	LoadArtifacts(path string) (types.ParsedArtifacts, error)
}

// PatchSourcePort loads documentation patches keyed by model name from
// schema patch files.
type PatchSourcePort interface {
	LoadPatches(path string) (map[string]*types.NodePatch, error)
}
