//go:build unit

package monorepo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/monorepo"
	doubles "github.com/rios0rios0/monopy/test/infrastructure/repositorydoubles"
)

func TestImpactPropagatorImpacted(t *testing.T) {
	t.Parallel()

	t.Run("should add direct and transitive dependents", func(t *testing.T) {
		t.Parallel()

		// given
		ws := monorepo.NewWorkspace(testRoot, chainedMetadata())
		all := []*entities.Package{
			mustPackage(t, ws, "company_packagea"),
			mustPackage(t, ws, "company_packageb"),
			mustPackage(t, ws, "company_packagec"),
			mustPackage(t, ws, "company_packaged"),
		}
		changed := packageSet(all[2])

		// when
		impacted, err := monorepo.NewImpactPropagator(monorepo.NewResolver(ws)).Impacted(changed, all)

		// then
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"company_packagea", "company_packageb", "company_packagec"},
			monorepo.SortedNames(impacted),
		)
		assert.Len(t, changed, 1)
	})

	t.Run("should return nothing when nothing changed", func(t *testing.T) {
		t.Parallel()

		// given
		ws := monorepo.NewWorkspace(testRoot, chainedMetadata())
		all := []*entities.Package{mustPackage(t, ws, "company_packagea")}

		// when
		impacted, err := monorepo.NewImpactPropagator(monorepo.NewResolver(ws)).Impacted(nil, all)

		// then
		require.NoError(t, err)
		assert.Empty(t, impacted)
	})

	t.Run("should propagate resolution errors", func(t *testing.T) {
		t.Parallel()

		// given
		metadata := doubles.NewStubMetadataRepository().
			WithPackage("packagea", "company_packagea", "3.7", "company_packageb").
			WithPackage("packageb", "company_packageb", "3.7", "company_packagea")
		ws := monorepo.NewWorkspace(testRoot, metadata)
		all := []*entities.Package{mustPackage(t, ws, "company_packagea"), mustPackage(t, ws, "company_packageb")}

		// when
		_, err := monorepo.NewImpactPropagator(monorepo.NewResolver(ws)).Impacted(packageSet(all[0]), all)

		// then
		var cycleErr *entities.CycleError
		require.ErrorAs(t, err, &cycleErr)
	})
}
