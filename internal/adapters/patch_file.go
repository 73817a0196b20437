package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/nazliander/dbt-core/internal/types"
)

// schemaPatchFile is the on-disk shape of a schema patch file: a
// version marker plus per-model descriptive metadata.
type schemaPatchFile struct {
	Version int               `yaml:"version"`
	Models  []schemaPatchItem `yaml:"models"`
}

type schemaPatchItem struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description,omitempty"`
	Columns     []types.ColumnInfo `yaml:"columns,omitempty"`
	Docrefs     []types.Docref     `yaml:"docrefs,omitempty"`
}

// PatchFileAdapter loads schema patch files and returns their contents
// as patches keyed by model name.
type PatchFileAdapter struct{}

func NewPatchFileAdapter() PatchFileAdapter {
	return PatchFileAdapter{}
}

func (a PatchFileAdapter) LoadPatches(path string) (map[string]*types.NodePatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("schema patch file not found").
			WithCause(err)
	}
	var file schemaPatchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse schema patch yaml").
			WithCause(err)
	}
	if file.Version != 2 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema patch file version must be 2")
	}
	patches := make(map[string]*types.NodePatch, len(file.Models))
	for _, model := range file.Models {
		if model.Name == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("schema patch entry is missing a model name")
		}
		if _, ok := patches[model.Name]; ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("schema patch file lists model " + model.Name + " twice")
		}
		patches[model.Name] = &types.NodePatch{
			Name:             model.Name,
			Description:      model.Description,
			OriginalFilePath: path,
			Columns:          model.Columns,
			Docrefs:          model.Docrefs,
		}
	}
	return patches, nil
}
