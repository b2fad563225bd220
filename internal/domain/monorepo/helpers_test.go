//go:build unit

package monorepo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/monorepo"
	doubles "github.com/rios0rios0/monopy/test/infrastructure/repositorydoubles"
)

const testRoot = "/monorepo"

// chainedMetadata describes A -> B -> C plus an unrelated D.
func chainedMetadata() *doubles.StubMetadataRepository {
	return doubles.NewStubMetadataRepository().
		WithPackage("packagea", "company_packagea", "3.7", "company_packageb", "flask").
		WithPackage("packageb", "company_packageb", "3.7", "company_packagec", "wheel==1.1").
		WithPackage("packagec", "company_packagec", "2.7, 3.7", "six").
		WithPackage("packaged", "company_packaged", "3.7")
}

func mustPackage(t *testing.T, ws *monorepo.Workspace, name string) *entities.Package {
	t.Helper()
	pkg, err := ws.PackageByName(name)
	require.NoError(t, err)
	return pkg
}

func packageSet(packages ...*entities.Package) map[string]*entities.Package {
	set := make(map[string]*entities.Package, len(packages))
	for _, pkg := range packages {
		set[pkg.Name] = pkg
	}
	return set
}
