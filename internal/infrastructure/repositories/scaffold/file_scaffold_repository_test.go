//go:build unit

package scaffold_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-ini/ini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/infrastructure/repositories/scaffold"
	"github.com/rios0rios0/monopy/internal/infrastructure/repositories/setupcfg"
	"github.com/rios0rios0/monopy/test/domain/entitybuilders"
)

func TestFileScaffoldRepositoryWriteMonorepo(t *testing.T) {
	t.Parallel()

	t.Run("should write settings, readme, gitignore and an empty tox.ini", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		repo := scaffold.NewFileScaffoldRepository()

		// when
		err := repo.WriteMonorepo(root, entities.DefaultSettings())

		// then
		require.NoError(t, err)
		for _, name := range []string{entities.SettingsFileName, "README.md", ".gitignore", "tox.ini", "docs.md"} {
			assert.FileExists(t, filepath.Join(root, name))
		}
		settings, loadErr := entities.LoadSettings(root)
		require.NoError(t, loadErr)
		assert.Equal(t, entities.DefaultSettings(), settings)
	})
}

func TestFileScaffoldRepositoryWritePackage(t *testing.T) {
	t.Parallel()

	t.Run("should create a package readable as metadata", func(t *testing.T) {
		t.Parallel()

		// given
		dir := filepath.Join(t.TempDir(), "packagea")
		name, err := entities.ParsePackageName("company.team.packagea")
		require.NoError(t, err)
		repo := scaffold.NewFileScaffoldRepository()

		// when
		err = repo.WritePackage(dir, name)

		// then
		require.NoError(t, err)
		for _, path := range []string{
			"company/__init__.py",
			"company/team/__init__.py",
			"company/team/packagea/__init__.py",
			"company/team/packagea/module.py",
			"tests/__init__.py",
			"tests/test_module.py",
			"deploy.py",
			"README.md",
			"setup.cfg",
			"setup.py",
		} {
			assert.FileExists(t, filepath.Join(dir, path))
		}

		test, readErr := os.ReadFile(filepath.Join(dir, "tests", "test_module.py"))
		require.NoError(t, readErr)
		assert.Contains(t, string(test), "from company.team.packagea.module import add_1")

		metadata, metaErr := setupcfg.NewMetadataRepository()
		require.NoError(t, metaErr)
		meta, loadErr := metadata.Load(dir)
		require.NoError(t, loadErr)
		assert.Equal(t, "company_team_packagea", meta.Name)
		assert.Equal(t, scaffold.DefaultPythonVersion, meta.PythonRequires)
		assert.Empty(t, meta.Requirements)
	})
}

func TestFileScaffoldRepositorySync(t *testing.T) {
	t.Parallel()

	t.Run("should write one tox environment per package and runtime", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		packages := []*entities.Package{
			entitybuilders.NewPackageBuilder().WithName("company_packagea").
				WithDir(filepath.Join(root, "packagea")).WithRuntimeVersions("2.7", "3.7").BuildPackage(),
			entitybuilders.NewPackageBuilder().WithName("company_packageb").
				WithDir(filepath.Join(root, "packageb")).BuildPackage(),
		}
		repo := scaffold.NewFileScaffoldRepository()

		// when
		err := repo.Sync(root, packages)

		// then
		require.NoError(t, err)
		cfg, loadErr := ini.Load(filepath.Join(root, "tox.ini"))
		require.NoError(t, loadErr)
		assert.Equal(t,
			"py27-company_packagea,py37-company_packagea,py37-company_packageb",
			cfg.Section("tox").Key("envlist").String(),
		)
		env := cfg.Section("testenv:py27-company_packagea")
		assert.Equal(t, "python2.7", env.Key("basepython").String())
		assert.Equal(t, "{toxinidir}/packagea", env.Key("changedir").String())
		assert.Equal(t, "-e{toxinidir}/packagea", env.Key("deps").String())

		docs, readErr := os.ReadFile(filepath.Join(root, "docs.md"))
		require.NoError(t, readErr)
		assert.Contains(t, string(docs), "- [company.packagea](packagea/README.md)")
		assert.Contains(t, string(docs), "- [company.packageb](packageb/README.md)")
	})
}
