package adapters

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/nazliander/dbt-core/internal/types"
)

// ManifestFileAdapter reads and writes the serialized manifest contract
// as JSON. Reads enforce the closed schema: unknown top-level fields
// are rejected and the nodes, macros, and docs collections are
// required.
type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) Write(path string, manifest types.WritableManifest) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create manifest output directory").
			WithCause(err)
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode manifest").
			WithCause(err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (a ManifestFileAdapter) Read(path string) (types.WritableManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.WritableManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var manifest types.WritableManifest
	if err := decoder.Decode(&manifest); err != nil {
		return types.WritableManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to decode manifest json").
			WithCause(err)
	}
	if manifest.Nodes == nil || manifest.Macros == nil || manifest.Docs == nil {
		return types.WritableManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest requires nodes, macros, and docs collections")
	}
	return manifest, nil
}
