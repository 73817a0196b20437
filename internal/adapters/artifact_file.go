package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/nazliander/dbt-core/internal/types"
)

// ArtifactFileAdapter reads parser output bundles from YAML files.
type ArtifactFileAdapter struct{}

func NewArtifactFileAdapter() ArtifactFileAdapter {
	return ArtifactFileAdapter{}
}

func (a ArtifactFileAdapter) LoadArtifacts(path string) (types.ParsedArtifacts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ParsedArtifacts{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("artifact file not found").
			WithCause(err)
	}
	var artifacts types.ParsedArtifacts
	if err := yaml.Unmarshal(data, &artifacts); err != nil {
		return types.ParsedArtifacts{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse artifact yaml").
			WithCause(err)
	}
	return artifacts, nil
}
