package app

import (
	"time"

	"github.com/nazliander/dbt-core/internal/adapters"
	"github.com/nazliander/dbt-core/internal/ports"
)

type Service struct {
	Artifacts      ports.ArtifactSourcePort
	Patches        ports.PatchSourcePort
	ManifestWriter ports.ManifestWriterPort
	ManifestReader ports.ManifestReaderPort
	Clock          func() time.Time
}

func NewService() Service {
	manifestFile := adapters.NewManifestFileAdapter()
	return Service{
		Artifacts:      adapters.NewArtifactFileAdapter(),
		Patches:        adapters.NewPatchFileAdapter(),
		ManifestWriter: manifestFile,
		ManifestReader: manifestFile,
		Clock:          time.Now,
	}
}
