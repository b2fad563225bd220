//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"path/filepath"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

// StubMetadataRepository implements repositories.MetadataRepository from an in-memory table
// keyed by directory name (the last path element).
type StubMetadataRepository struct {
	Metadata map[string]*entities.Metadata
	LoadErr  error

	// spy: directories that were loaded
	LoadedDirs []string
}

var _ repositories.MetadataRepository = (*StubMetadataRepository)(nil)

// NewStubMetadataRepository creates an empty stub.
func NewStubMetadataRepository() *StubMetadataRepository {
	return &StubMetadataRepository{Metadata: make(map[string]*entities.Metadata)}
}

// WithPackage registers a package in dir with the given requirements.
func (s *StubMetadataRepository) WithPackage(
	dir, name, pythonRequires string, requirements ...string,
) *StubMetadataRepository {
	s.Metadata[dir] = &entities.Metadata{
		Name:           name,
		Requirements:   requirements,
		PythonRequires: pythonRequires,
	}
	return s
}

func (s *StubMetadataRepository) Load(dir string) (*entities.Metadata, error) {
	s.LoadedDirs = append(s.LoadedDirs, dir)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	meta, ok := s.Metadata[filepath.Base(dir)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrPackageNotFound, dir)
	}
	return meta, nil
}
