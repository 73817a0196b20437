package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/nazliander/dbt-core/internal/shared"
	"github.com/nazliander/dbt-core/internal/types"
)

// ManifestValidator enforces the structural invariants of a manifest as
// an explicit step, invoked after registration and before
// serialization. It is deliberately separate from the entity types:
// validation is a layer, not inherited behavior.
type ManifestValidator struct{}

func NewManifestValidator() ManifestValidator {
	return ManifestValidator{}
}

func (v ManifestValidator) Validate(ctx context.Context, manifest *Manifest) error {
	for _, node := range manifest.Nodes() {
		assert.NotEmpty(ctx, node.UniqueID, "node unique_id must be set")
		assert.NotEmpty(ctx, node.Name, "node name must be set")
		assert.NotEmpty(ctx, node.PackageName, "node package_name must be set")
		if !node.ResourceType.Known() {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("node %s has unknown resource type %q", node.UniqueID, node.ResourceType))
		}
		for _, dependencyID := range node.DependsOn.Nodes {
			if _, ok := manifest.NodeByID(dependencyID); !ok {
				return errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf(
						"node %s (package %s) depends on %s which is not in the manifest",
						node.UniqueID, node.PackageName, dependencyID,
					))
			}
		}
	}
	for _, macro := range manifest.Macros() {
		assert.NotEmpty(ctx, macro.UniqueID, "macro unique_id must be set")
		assert.NotEmpty(ctx, macro.Name, "macro name must be set")
		if macro.ResourceType != types.NodeTypeMacro && macro.ResourceType != types.NodeTypeOperation {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("macro %s has resource type %q, expected macro or operation", macro.UniqueID, macro.ResourceType))
		}
	}
	for _, doc := range manifest.Docs() {
		foundPackage, foundName, ok := shared.DocUniqueIDParts(doc.UniqueID)
		if !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf(
					"documentation names cannot contain '.' characters: %s (package %s, file %s)",
					doc.Name, doc.PackageName, doc.OriginalFilePath,
				))
		}
		if doc.Name != "" && doc.Name != foundName {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("doc %s name %q does not match its unique ID", doc.UniqueID, doc.Name))
		}
		if doc.PackageName != "" && doc.PackageName != foundPackage {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("doc %s package %q does not match its unique ID", doc.UniqueID, doc.PackageName))
		}
	}
	log.Ctx(ctx).Debug().
		Int("nodes", len(manifest.Nodes())).
		Int("macros", len(manifest.Macros())).
		Int("docs", len(manifest.Docs())).
		Msg("manifest validated")
	return nil
}

// ValidateWritable checks the closed structural contract of a
// serialized manifest: nodes, macros, and docs are required.
func (v ManifestValidator) ValidateWritable(writable types.WritableManifest) error {
	if writable.Nodes == nil {
		return missingCollection("nodes")
	}
	if writable.Macros == nil {
		return missingCollection("macros")
	}
	if writable.Docs == nil {
		return missingCollection("docs")
	}
	return nil
}

func missingCollection(name string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("manifest is missing required collection %q", name))
}
