//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/monopy/internal/domain/entities"
)

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
	return root
}

func TestLoadSettings(t *testing.T) {
	t.Parallel()

	t.Run("should fill unset fields with defaults", func(t *testing.T) {
		t.Parallel()

		// given
		root := writeSettings(t, entities.SettingsFileName, "default_branches: [develop]\ntest_runner: tox4\n")

		// when
		settings, err := entities.LoadSettings(root)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"develop"}, settings.DefaultBranches)
		assert.Equal(t, "tox4", settings.TestRunner)
		assert.Equal(t, "origin", settings.Remote)
		assert.Equal(t, []string{"README.md"}, settings.Ignore)
		assert.Equal(t, filepath.Join(root, "wheelhouse"), settings.WheelhouseDir(root))
	})

	t.Run("should find the .yml variant", func(t *testing.T) {
		t.Parallel()

		// given
		root := writeSettings(t, ".monopy.yml", "remote: upstream\n")

		// when
		settings, err := entities.LoadSettings(root)

		// then
		require.NoError(t, err)
		assert.Equal(t, "upstream", settings.Remote)
	})

	t.Run("should keep an explicitly empty ignore list", func(t *testing.T) {
		t.Parallel()

		// given
		root := writeSettings(t, entities.SettingsFileName, "ignore: []\n")

		// when
		settings, err := entities.LoadSettings(root)

		// then
		require.NoError(t, err)
		assert.Empty(t, settings.Ignore)
	})

	t.Run("should return ErrNotInitialized without a settings file", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()

		// when
		_, err := entities.LoadSettings(root)

		// then
		require.ErrorIs(t, err, entities.ErrNotInitialized)
	})

	t.Run("should reject an invalid ignore pattern", func(t *testing.T) {
		t.Parallel()

		// given
		root := writeSettings(t, entities.SettingsFileName, "ignore: ['docs/[']\n")

		// when
		_, err := entities.LoadSettings(root)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ignore[0]")
	})

	t.Run("should round-trip the defaults", func(t *testing.T) {
		t.Parallel()

		// given
		content, err := entities.DefaultSettings().Marshal()
		require.NoError(t, err)
		root := writeSettings(t, entities.SettingsFileName, string(content))

		// when
		settings, err := entities.LoadSettings(root)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultSettings(), settings)
	})
}
