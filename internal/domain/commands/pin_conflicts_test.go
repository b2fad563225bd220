//go:build unit

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/monopy/internal/domain/commands"
	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/test/domain/entitybuilders"
)

func TestWarnPinConflicts(t *testing.T) {
	t.Parallel()

	t.Run("should report external pins and skip local packages", func(t *testing.T) {
		t.Parallel()

		// given
		packages := []*entities.Package{
			entitybuilders.NewPackageBuilder().WithName("company_packagea").
				WithRequirements("company_packagec==0.0.1", "wheel==1.10.0").BuildPackage(),
			entitybuilders.NewPackageBuilder().WithName("company_packageb").
				WithRequirements("company_packagec==0.0.2", "wheel==1.9.2").BuildPackage(),
			entitybuilders.NewPackageBuilder().WithName("company_packagec").BuildPackage(),
		}

		// when
		conflicts := commands.WarnPinConflicts(packages)

		// then
		require.Len(t, conflicts, 1)
		assert.Equal(t, "wheel", conflicts[0].Requirement)
	})
}
