package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/nazliander/dbt-core/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	path := strings.TrimSpace(req.ManifestPath)
	if path == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	writable, err := s.ManifestReader.Read(path)
	if err != nil {
		return ValidateResult{}, err
	}
	validator := core.NewManifestValidator()
	if err := validator.ValidateWritable(writable); err != nil {
		return ValidateResult{}, err
	}
	manifest, err := core.FromWritable(writable)
	if err != nil {
		return ValidateResult{}, err
	}
	if err := validator.Validate(ctx, manifest); err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		NodeCount:  len(manifest.Nodes()),
		MacroCount: len(manifest.Macros()),
		DocCount:   len(manifest.Docs()),
	}, nil
}
