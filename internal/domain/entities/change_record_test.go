//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/monopy/internal/domain/entities"
)

func TestParseNameStatus(t *testing.T) {
	t.Parallel()

	t.Run("should parse status and path of each line", func(t *testing.T) {
		t.Parallel()

		// given
		output := "M\tpackagea/setup.cfg\nA\tpackageb/company/packageb/module.py\nD\tREADME.md\n"

		// when
		records := entities.ParseNameStatus(output)

		// then
		assert.Equal(t, []entities.ChangeRecord{
			{Type: entities.ChangeModified, Path: "packagea/setup.cfg"},
			{Type: entities.ChangeAdded, Path: "packageb/company/packageb/module.py"},
			{Type: entities.ChangeDeleted, Path: "README.md"},
		}, records)
	})

	t.Run("should drop a line with a missing tab", func(t *testing.T) {
		t.Parallel()

		// given
		output := "A\tpkg/README.md\nA\tpkg2/README.md\nM pkg3/setup.cfg"

		// when
		records := entities.ParseNameStatus(output)

		// then
		assert.Equal(t, []entities.ChangeRecord{
			{Type: entities.ChangeAdded, Path: "pkg/README.md"},
			{Type: entities.ChangeAdded, Path: "pkg2/README.md"},
		}, records)
	})

	t.Run("should skip lines without exactly two fields", func(t *testing.T) {
		t.Parallel()

		// given
		output := "warning: something\nR100\told/setup.cfg\tnew/setup.cfg\n\nM\tpackagea/x.py\r\n"

		// when
		records := entities.ParseNameStatus(output)

		// then
		assert.Equal(t, []entities.ChangeRecord{{Type: entities.ChangeModified, Path: "packagea/x.py"}}, records)
	})

	t.Run("should return an empty slice for empty output", func(t *testing.T) {
		t.Parallel()

		// given
		output := ""

		// when
		records := entities.ParseNameStatus(output)

		// then
		assert.Empty(t, records)
	})
}

func TestChangeRecord(t *testing.T) {
	t.Parallel()

	t.Run("should expose top-level directory and base name", func(t *testing.T) {
		t.Parallel()

		// given
		record := entities.ChangeRecord{Type: entities.ChangeModified, Path: "packagea/company/packagea/module.py"}

		// when
		top, base := record.TopLevelDir(), record.BaseName()

		// then
		assert.Equal(t, "packagea", top)
		assert.Equal(t, "module.py", base)
	})

	t.Run("should match types ignoring similarity scores", func(t *testing.T) {
		t.Parallel()

		// given
		record := entities.ChangeRecord{Type: "R087", Path: "packagea/a.py"}

		// when
		renamed, modified := record.Is(entities.ChangeRenamed), record.Is(entities.ChangeModified)

		// then
		assert.True(t, renamed)
		assert.False(t, modified)
	})
}
