package types

// MacroDependsOn lists the macros a macro body calls.
type MacroDependsOn struct {
	Macros []string `json:"macros" yaml:"macros"`
}

// ParsedMacro is a callable macro record. ResourceType is either macro
// or operation; operations are callable independently of any node.
// Macros are immutable once parsed and exist only as lookup targets.
type ParsedMacro struct {
	UniqueID         string         `json:"unique_id" yaml:"unique_id"`
	Name             string         `json:"name" yaml:"name"`
	PackageName      string         `json:"package_name" yaml:"package_name"`
	ResourceType     NodeType       `json:"resource_type" yaml:"resource_type"`
	Path             string         `json:"path" yaml:"path"`
	OriginalFilePath string         `json:"original_file_path" yaml:"original_file_path"`
	RawSQL           string         `json:"raw_sql" yaml:"raw_sql"`
	Tags             []string       `json:"tags" yaml:"tags"`
	DependsOn        MacroDependsOn `json:"depends_on" yaml:"depends_on"`
}
