// Package shared provides common naming helpers used across multiple
// packages in the dbt-core codebase.
package shared

import (
	"fmt"
	"strings"

	"github.com/nazliander/dbt-core/internal/types"
)

// DefaultAdapter is the adapter name used when a materialization has no
// adapter-specific implementation.
const DefaultAdapter = "default"

// NodeUniqueID builds the canonical unique ID for a node from its
// resource type, package, and name.
func NodeUniqueID(resourceType types.NodeType, packageName string, name string) string {
	return fmt.Sprintf("%s.%s.%s", resourceType, packageName, name)
}

// DocUniqueIDParts splits a documentation unique ID into its package
// and name segments. ok is false unless the ID has exactly two
// dot-separated segments.
func DocUniqueIDParts(uniqueID string) (packageName string, name string, ok bool) {
	parts := strings.Split(uniqueID, ".")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// MaterializationMacroName builds the canonical macro name for a
// materialization strategy on a given adapter. An empty adapter means
// the default adapter.
func MaterializationMacroName(materializationName string, adapterType string) string {
	adapter := strings.TrimSpace(adapterType)
	if adapter == "" {
		adapter = DefaultAdapter
	}
	return fmt.Sprintf("materialization_%s_%s", materializationName, adapter)
}
