package types

// DependsOn lists the unique IDs a node needs before it can run. Nodes
// is ordered and duplicate-free as produced by the parser.
type DependsOn struct {
	Nodes  []string `json:"nodes" yaml:"nodes"`
	Macros []string `json:"macros" yaml:"macros"`
}

// ColumnInfo is descriptive metadata for a single column, supplied by
// schema patch files rather than by the model source itself.
type ColumnInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Docref records a doc() reference made from a patch description.
type Docref struct {
	DocumentationName    string `json:"documentation_name" yaml:"documentation_name"`
	DocumentationPackage string `json:"documentation_package,omitempty" yaml:"documentation_package,omitempty"`
}

// ParsedNode is a buildable artifact record produced by the parser.
// Its identity is UniqueID, derived from (resource type, package, name),
// and never changes after creation. Descriptive metadata is mutable via
// patches; compilation fills the Compiled* fields.
type ParsedNode struct {
	UniqueID         string         `json:"unique_id" yaml:"unique_id"`
	Name             string         `json:"name" yaml:"name"`
	PackageName      string         `json:"package_name" yaml:"package_name"`
	ResourceType     NodeType       `json:"resource_type" yaml:"resource_type"`
	Path             string         `json:"path" yaml:"path"`
	OriginalFilePath string         `json:"original_file_path" yaml:"original_file_path"`
	RawSQL           string         `json:"raw_sql" yaml:"raw_sql"`
	Alias            string         `json:"alias,omitempty" yaml:"alias,omitempty"`
	Schema           string         `json:"schema,omitempty" yaml:"schema,omitempty"`
	FQN              []string       `json:"fqn" yaml:"fqn"`
	Tags             []string       `json:"tags" yaml:"tags"`
	Config           map[string]any `json:"config" yaml:"config"`
	Refs             [][]string     `json:"refs" yaml:"refs"`
	DependsOn        DependsOn      `json:"depends_on" yaml:"depends_on"`

	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Columns     map[string]ColumnInfo `json:"columns,omitempty" yaml:"columns,omitempty"`
	Docrefs     []Docref              `json:"docrefs,omitempty" yaml:"docrefs,omitempty"`
	PatchPath   string                `json:"patch_path,omitempty" yaml:"patch_path,omitempty"`

	Compiled    bool   `json:"compiled" yaml:"compiled"`
	CompiledSQL string `json:"compiled_sql,omitempty" yaml:"compiled_sql,omitempty"`
	InjectedSQL string `json:"injected_sql,omitempty" yaml:"injected_sql,omitempty"`
}

// ApplyPatch merges the descriptive metadata from a patch into the node.
// Description and Docrefs are always taken from the patch, even when
// empty, while Columns are rebuilt only when the patch lists any and
// are otherwise kept as they were. Identity and dependency fields are
// untouched.
func (n *ParsedNode) ApplyPatch(patch NodePatch) {
	n.PatchPath = patch.OriginalFilePath
	n.Description = patch.Description
	n.Docrefs = patch.Docrefs
	if len(patch.Columns) > 0 {
		n.Columns = make(map[string]ColumnInfo, len(patch.Columns))
		for _, column := range patch.Columns {
			n.Columns[column.Name] = column
		}
	}
}

// NodePatch is a transient payload of descriptive metadata targeting a
// single model node, matched by bare model name. It is consumed by the
// merge and never stored in the manifest.
type NodePatch struct {
	Name             string       `json:"name" yaml:"name"`
	Description      string       `json:"description,omitempty" yaml:"description,omitempty"`
	OriginalFilePath string       `json:"original_file_path" yaml:"original_file_path"`
	Columns          []ColumnInfo `json:"columns,omitempty" yaml:"columns,omitempty"`
	Docrefs          []Docref     `json:"docrefs,omitempty" yaml:"docrefs,omitempty"`
}
