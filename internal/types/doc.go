package types

// ParsedDocumentation is a named documentation block. Its unique ID
// must decompose into exactly two dot-separated segments, package and
// name; any other shape fails validation.
type ParsedDocumentation struct {
	UniqueID         string `json:"unique_id" yaml:"unique_id"`
	Name             string `json:"name" yaml:"name"`
	PackageName      string `json:"package_name" yaml:"package_name"`
	OriginalFilePath string `json:"original_file_path" yaml:"original_file_path"`
	BlockContents    string `json:"block_contents" yaml:"block_contents"`
}
