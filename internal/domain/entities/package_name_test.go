//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/monopy/internal/domain/entities"
)

func TestParsePackageName(t *testing.T) {
	t.Parallel()

	t.Run("should split namespaces and leaf", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "company.team.packagea"

		// when
		name, err := entities.ParsePackageName(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"company", "team"}, name.Namespaces)
		assert.Equal(t, "packagea", name.Leaf)
		assert.Equal(t, "company.team.packagea", name.Dotted())
		assert.Equal(t, "company_team_packagea", name.FullName())
	})

	invalid := []string{"packagea", "company.", ".packagea", "Company.packagea", "company.package_a", "company.1pkg", "company.pkg-a"}
	for _, raw := range invalid {
		t.Run("should reject "+raw, func(t *testing.T) {
			t.Parallel()

			// given
			input := raw

			// when
			name, err := entities.ParsePackageName(input)

			// then
			var namingErr *entities.PackageNamingError
			require.ErrorAs(t, err, &namingErr)
			assert.Equal(t, input, namingErr.Name)
			assert.Nil(t, name)
		})
	}
}
