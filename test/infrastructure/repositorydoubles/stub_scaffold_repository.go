//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

// SpyScaffoldRepository implements repositories.ScaffoldRepository without touching the filesystem.
type SpyScaffoldRepository struct {
	// --- WriteMonorepo ---
	WriteMonorepoErr   error
	WriteMonorepoRoots []string

	// --- WritePackage ---
	WritePackageErr   error
	WritePackageCalls []WritePackageCall

	// --- Sync ---
	SyncErr   error
	SyncCalls [][]string // package names per call
}

// WritePackageCall records a single invocation of WritePackage.
type WritePackageCall struct {
	Dir  string
	Name *entities.PackageName
}

var _ repositories.ScaffoldRepository = (*SpyScaffoldRepository)(nil)

func (s *SpyScaffoldRepository) WriteMonorepo(root string, _ *entities.Settings) error {
	s.WriteMonorepoRoots = append(s.WriteMonorepoRoots, root)
	return s.WriteMonorepoErr
}

func (s *SpyScaffoldRepository) WritePackage(dir string, name *entities.PackageName) error {
	s.WritePackageCalls = append(s.WritePackageCalls, WritePackageCall{Dir: dir, Name: name})
	return s.WritePackageErr
}

func (s *SpyScaffoldRepository) Sync(_ string, packages []*entities.Package) error {
	names := make([]string, 0, len(packages))
	for _, pkg := range packages {
		names = append(names, pkg.Name)
	}
	s.SyncCalls = append(s.SyncCalls, names)
	return s.SyncErr
}
