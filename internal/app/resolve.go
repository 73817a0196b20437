package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/nazliander/dbt-core/internal/core"
	"github.com/nazliander/dbt-core/internal/types"
)

// Resolve answers a single name-resolution query against a persisted
// manifest. Absence of a match is a normal outcome reported through
// Found, not an error.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	path := strings.TrimSpace(req.ManifestPath)
	if path == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("name to resolve is required")
	}
	writable, err := s.ManifestReader.Read(path)
	if err != nil {
		return ResolveResult{}, err
	}
	manifest, err := core.FromWritable(writable)
	if err != nil {
		return ResolveResult{}, err
	}

	switch strings.TrimSpace(req.Kind) {
	case "ref":
		if node := manifest.FindRefableByName(name, req.Package); node != nil {
			return ResolveResult{
				Found:        true,
				UniqueID:     node.UniqueID,
				PackageName:  node.PackageName,
				ResourceType: string(node.ResourceType),
			}, nil
		}
		return ResolveResult{}, nil
	case "macro":
		return macroResult(manifest.FindMacroByName(name, req.Package)), nil
	case "operation":
		return macroResult(manifest.FindOperationByName(name, req.Package)), nil
	case "doc":
		doc, err := manifest.FindDocByName(name, req.Package)
		if err != nil {
			return ResolveResult{}, err
		}
		if doc == nil {
			return ResolveResult{}, nil
		}
		return ResolveResult{
			Found:        true,
			UniqueID:     doc.UniqueID,
			PackageName:  doc.PackageName,
			ResourceType: "docs",
		}, nil
	case "materialization":
		return macroResult(manifest.GetMaterializationMacro(name, req.Adapter)), nil
	default:
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("kind must be one of ref, macro, operation, doc, materialization")
	}
}

func macroResult(macro *types.ParsedMacro) ResolveResult {
	if macro == nil {
		return ResolveResult{}
	}
	return ResolveResult{
		Found:        true,
		UniqueID:     macro.UniqueID,
		PackageName:  macro.PackageName,
		ResourceType: string(macro.ResourceType),
	}
}
