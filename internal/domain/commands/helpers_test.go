//go:build unit

package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	doubles "github.com/rios0rios0/monopy/test/infrastructure/repositorydoubles"
)

// newMonorepo creates package directories A -> B -> C plus an unrelated D, each with a deploy script.
func newMonorepo(t *testing.T) (string, *doubles.StubMetadataRepository) {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"packagea", "packageb", "packagec", "packaged"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, dir, "deploy.py"), []byte("print('ok')\n"), 0o644))
	}

	metadata := doubles.NewStubMetadataRepository().
		WithPackage("packagea", "company_packagea", "3.7", "company_packageb", "wheel==1.10.0").
		WithPackage("packageb", "company_packageb", "3.7", "company_packagec", "wheel==1.9.2").
		WithPackage("packagec", "company_packagec", "2.7, 3.7", "six").
		WithPackage("packaged", "company_packaged", "3.7")
	return root, metadata
}

func changedPackageC() *doubles.SpyVersionControlRepository {
	vcs := doubles.NewSpyVersionControlRepository()
	vcs.DiffOutput = "M\tpackagec/company/packagec/module.py\nM\tREADME.md\n"
	return vcs
}

func settings() *entities.Settings {
	return entities.DefaultSettings()
}
