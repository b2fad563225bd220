package repositories

import "github.com/rios0rios0/monopy/internal/domain/entities"

// MetadataRepository reads the build metadata of a package directory.
type MetadataRepository interface {
	// Load parses <dir>/setup.cfg. It returns entities.ErrPackageNotFound when the
	// file is absent, unparsable, or has no [metadata] name.
	Load(dir string) (*entities.Metadata, error)
}
