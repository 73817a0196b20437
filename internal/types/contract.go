package types

// WritableManifest is the structural contract emitted by manifest
// serialization and consumed by the execution engine and persisted-state
// readers. The schema is closed: readers reject unknown top-level
// fields, and nodes, macros, and docs are required.
//
// ParentMap and ChildMap are always derived from each node's depends_on
// list at serialization time; they are never stored independently of the
// nodes, so they cannot drift out of sync.
type WritableManifest struct {
	Nodes       map[string]ParsedNode          `json:"nodes"`
	Macros      map[string]ParsedMacro         `json:"macros"`
	Docs        map[string]ParsedDocumentation `json:"docs"`
	GeneratedAt string                         `json:"generated_at"`
	ParentMap   map[string][]string            `json:"parent_map"`
	ChildMap    map[string][]string            `json:"child_map"`
}

// ParsedArtifacts is the parser's output bundle: the raw node, macro,
// and doc records for one or more projects, in parse order.
type ParsedArtifacts struct {
	Nodes  []*ParsedNode          `json:"nodes" yaml:"nodes"`
	Macros []*ParsedMacro         `json:"macros" yaml:"macros"`
	Docs   []*ParsedDocumentation `json:"docs" yaml:"docs"`
}

// FlatGraph is the reduced manifest view handed to the compiler: nodes
// as shallow copies, macros passed through unchanged.
type FlatGraph struct {
	Nodes  map[string]ParsedNode   `json:"nodes"`
	Macros map[string]*ParsedMacro `json:"macros"`
}
