package ports

import "github.com/nazliander/dbt-core/internal/types"

// ManifestWriterPort persists a serialized manifest contract.
type ManifestWriterPort interface {
	Write(path string, manifest types.WritableManifest) error
}

// ManifestReaderPort reads a persisted manifest contract, rejecting
// unknown top-level fields.
type ManifestReaderPort interface {
	Read(path string) (types.WritableManifest, error)
}
