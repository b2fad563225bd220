//go:build unit

package setupcfg_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/infrastructure/repositories/setupcfg"
)

func writeSetupCfg(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, setupcfg.FileName), []byte(content), 0o644))
}

func TestMetadataRepositoryLoad(t *testing.T) {
	t.Parallel()

	t.Run("should read name, requirements and python_requires", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeSetupCfg(t, dir, `[metadata]
name = company_packagea
version = 0.0.1

[options]
zip_safe = False
python_requires = 2.7, 3.7
install_requires =
    company_packageb
    wheel==1.1

[options.packages.find]
exclude =
    tests
`)
		repo, err := setupcfg.NewMetadataRepository()
		require.NoError(t, err)

		// when
		meta, err := repo.Load(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "company_packagea", meta.Name)
		assert.Equal(t, []string{"company_packageb", "wheel==1.1"}, meta.Requirements)
		assert.Equal(t, "2.7, 3.7", meta.PythonRequires)
	})

	t.Run("should keep a single-line install_requires", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeSetupCfg(t, dir, "[metadata]\nname = company_packagea\n\n[options]\ninstall_requires = flask\n")
		repo, err := setupcfg.NewMetadataRepository()
		require.NoError(t, err)

		// when
		meta, err := repo.Load(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"flask"}, meta.Requirements)
		assert.Empty(t, meta.PythonRequires)
	})

	t.Run("should accept a package without options", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeSetupCfg(t, dir, "[metadata]\nname = company_packagea\n")
		repo, err := setupcfg.NewMetadataRepository()
		require.NoError(t, err)

		// when
		meta, err := repo.Load(dir)

		// then
		require.NoError(t, err)
		assert.Empty(t, meta.Requirements)
	})

	t.Run("should return ErrPackageNotFound without setup.cfg", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo, err := setupcfg.NewMetadataRepository()
		require.NoError(t, err)

		// when
		_, err = repo.Load(dir)

		// then
		require.ErrorIs(t, err, entities.ErrPackageNotFound)
	})

	t.Run("should return ErrPackageNotFound without a metadata name", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeSetupCfg(t, dir, "[options]\ninstall_requires = flask\n")
		repo, err := setupcfg.NewMetadataRepository()
		require.NoError(t, err)

		// when
		_, err = repo.Load(dir)

		// then
		require.ErrorIs(t, err, entities.ErrPackageNotFound)
	})

	t.Run("should reload a file whose modification time changed", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeSetupCfg(t, dir, "[metadata]\nname = company_old\n")
		repo, err := setupcfg.NewMetadataRepository()
		require.NoError(t, err)
		first, err := repo.Load(dir)
		require.NoError(t, err)

		writeSetupCfg(t, dir, "[metadata]\nname = company_new\n")
		later := time.Now().Add(time.Hour)
		require.NoError(t, os.Chtimes(filepath.Join(dir, setupcfg.FileName), later, later))

		// when
		second, err := repo.Load(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "company_old", first.Name)
		assert.Equal(t, "company_new", second.Name)
	})
}
