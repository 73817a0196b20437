package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/nazliander/dbt-core/internal/core"
	"github.com/nazliander/dbt-core/internal/types"
)

func (s Service) Build(ctx context.Context, req BuildRequest) (BuildResult, error) {
	output := strings.TrimSpace(req.Output)
	if output == "" {
		return BuildResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest output path is required")
	}
	if len(req.ArtifactPaths) == 0 {
		return BuildResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one artifact file is required")
	}

	manifest := core.NewManifest(s.Clock().UTC())
	for _, path := range req.ArtifactPaths {
		artifacts, err := s.Artifacts.LoadArtifacts(strings.TrimSpace(path))
		if err != nil {
			return BuildResult{}, err
		}
		if err := manifest.AddNodes(ctx, artifacts.Nodes); err != nil {
			return BuildResult{}, err
		}
		if err := manifest.AddMacros(ctx, artifacts.Macros); err != nil {
			return BuildResult{}, err
		}
		if err := manifest.AddDocs(ctx, artifacts.Docs); err != nil {
			return BuildResult{}, err
		}
	}

	validator := core.NewManifestValidator()
	if err := validator.Validate(ctx, manifest); err != nil {
		return BuildResult{}, err
	}

	patches := map[string]*types.NodePatch{}
	for _, path := range req.PatchPaths {
		loaded, err := s.Patches.LoadPatches(strings.TrimSpace(path))
		if err != nil {
			return BuildResult{}, err
		}
		for name, patch := range loaded {
			if _, ok := patches[name]; ok {
				return BuildResult{}, errbuilder.New().
					WithCode(errbuilder.CodeAlreadyExists).
					WithMsg("model " + name + " is patched by more than one schema file")
			}
			patches[name] = patch
		}
	}
	manifest.PatchNodes(ctx, patches)

	writable, err := manifest.Serialize(ctx)
	if err != nil {
		return BuildResult{}, err
	}
	if err := s.ManifestWriter.Write(output, writable); err != nil {
		return BuildResult{}, err
	}
	return BuildResult{
		OutputPath: output,
		NodeCount:  len(writable.Nodes),
		MacroCount: len(writable.Macros),
		DocCount:   len(writable.Docs),
	}, nil
}
