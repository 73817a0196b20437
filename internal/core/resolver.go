package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/nazliander/dbt-core/internal/shared"
	"github.com/nazliander/dbt-core/internal/types"
)

// findNodeByName scans the node mapping in entity-insertion order and
// returns the first node matching the name, an allowed resource type,
// and the package. An empty package searches all packages. Absence is a
// nil result, not an error.
func (m *Manifest) findNodeByName(name string, packageName string, allowed []types.NodeType) *types.ParsedNode {
	for _, id := range m.nodeOrder {
		node := m.nodes[id]
		if node.Name != name {
			continue
		}
		if !containsNodeType(allowed, node.ResourceType) {
			continue
		}
		if packageName != "" && node.PackageName != packageName {
			continue
		}
		return node
	}
	return nil
}

// findMacroByName is the macro-mapping counterpart of findNodeByName.
func (m *Manifest) findMacroByName(name string, packageName string, allowed []types.NodeType) *types.ParsedMacro {
	for _, id := range m.macroOrder {
		macro := m.macros[id]
		if macro.Name != name {
			continue
		}
		if !containsNodeType(allowed, macro.ResourceType) {
			continue
		}
		if packageName != "" && macro.PackageName != packageName {
			continue
		}
		return macro
	}
	return nil
}

// FindRefableByName finds a valid ref() target by name, restricted to
// the referable resource types. An empty package searches all packages.
func (m *Manifest) FindRefableByName(name string, packageName string) *types.ParsedNode {
	return m.findNodeByName(name, packageName, types.RefableNodeTypes())
}

// FindMacroByName finds a plain macro by name. An empty package
// searches all packages.
func (m *Manifest) FindMacroByName(name string, packageName string) *types.ParsedMacro {
	return m.findMacroByName(name, packageName, []types.NodeType{types.NodeTypeMacro})
}

// FindOperationByName finds an operation macro by name. An empty
// package searches all packages.
func (m *Manifest) FindOperationByName(name string, packageName string) *types.ParsedMacro {
	return m.findMacroByName(name, packageName, []types.NodeType{types.NodeTypeOperation})
}

// FindDocByName finds a documentation block by name. Doc unique IDs
// must split into exactly two dot-separated segments, package and name;
// an ID with any other shape fails rather than silently mismatching.
func (m *Manifest) FindDocByName(name string, packageName string) (*types.ParsedDocumentation, error) {
	for _, id := range m.docOrder {
		doc := m.docs[id]
		foundPackage, foundName, ok := shared.DocUniqueIDParts(id)
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf(
					"documentation names cannot contain '.' characters: %s (package %s, file %s)",
					doc.Name, doc.PackageName, doc.OriginalFilePath,
				))
		}
		if name != foundName {
			continue
		}
		if packageName != "" && packageName != foundPackage {
			continue
		}
		return doc, nil
	}
	return nil, nil
}

// GetMaterializationMacro resolves the implementation macro for a
// materialization strategy on a given adapter, searching all packages.
// If no adapter-specific macro exists and the adapter is neither empty
// nor the default marker, it falls back to the default-adapter name.
// There is no further fallback level; the result of the second lookup
// is returned as is, possibly nil.
func (m *Manifest) GetMaterializationMacro(materializationName string, adapterType string) *types.ParsedMacro {
	macroName := shared.MaterializationMacroName(materializationName, adapterType)
	macro := m.FindMacroByName(macroName, "")
	if macro == nil && adapterType != "" && adapterType != shared.DefaultAdapter {
		macroName = shared.MaterializationMacroName(materializationName, shared.DefaultAdapter)
		macro = m.FindMacroByName(macroName, "")
	}
	return macro
}

func containsNodeType(allowed []types.NodeType, candidate types.NodeType) bool {
	for _, nodeType := range allowed {
		if nodeType == candidate {
			return true
		}
	}
	return false
}
