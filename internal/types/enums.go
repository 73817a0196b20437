package types

// NodeType is the closed set of resource kinds that can appear in a
// parsed project. String values match the manifest wire format.
type NodeType string

const (
	NodeTypeModel         NodeType = "model"
	NodeTypeAnalysis      NodeType = "analysis"
	NodeTypeTest          NodeType = "test"
	NodeTypeArchive       NodeType = "archive"
	NodeTypeMacro         NodeType = "macro"
	NodeTypeOperation     NodeType = "operation"
	NodeTypeSeed          NodeType = "seed"
	NodeTypeDocumentation NodeType = "docs"
)

var refableNodeTypes = map[NodeType]struct{}{
	NodeTypeModel:   {},
	NodeTypeSeed:    {},
	NodeTypeArchive: {},
}

// Refable reports whether other nodes may depend on this resource type
// by name.
func (t NodeType) Refable() bool {
	_, ok := refableNodeTypes[t]
	return ok
}

// RefableNodeTypes returns the resource types that are valid ref targets.
func RefableNodeTypes() []NodeType {
	return []NodeType{NodeTypeModel, NodeTypeSeed, NodeTypeArchive}
}

// Known reports whether the value is a member of the closed enum.
func (t NodeType) Known() bool {
	switch t {
	case NodeTypeModel, NodeTypeAnalysis, NodeTypeTest, NodeTypeArchive,
		NodeTypeMacro, NodeTypeOperation, NodeTypeSeed, NodeTypeDocumentation:
		return true
	default:
		return false
	}
}
