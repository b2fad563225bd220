//go:build unit

package monorepo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/monorepo"
	doubles "github.com/rios0rios0/monopy/test/infrastructure/repositorydoubles"
)

func newDetector(vcs *doubles.SpyVersionControlRepository) *monorepo.ChangeDetector {
	ws := monorepo.NewWorkspace(testRoot, chainedMetadata())
	return monorepo.NewChangeDetector(ws, vcs, entities.DefaultSettings())
}

func TestChangeDetectorParentBranch(t *testing.T) {
	t.Parallel()

	t.Run("should fail without history", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := doubles.NewSpyVersionControlRepository()
		vcs.History = false

		// when
		_, err := newDetector(vcs).ParentBranch(context.Background())

		// then
		require.ErrorIs(t, err, entities.ErrNoRepositoryHistory)
	})

	t.Run("should use the previous commit on a default branch", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := doubles.NewSpyVersionControlRepository()
		vcs.Branch = "master"

		// when
		parent, err := newDetector(vcs).ParentBranch(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "HEAD~1", parent)
		assert.Empty(t, vcs.FetchCalls)
	})

	t.Run("should use the branch itself on a first commit", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := doubles.NewSpyVersionControlRepository()
		vcs.Branch = "main"
		vcs.HasParent = false

		// when
		parent, err := newDetector(vcs).ParentBranch(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "main", parent)
	})

	t.Run("should prefer the fetched remote default branch", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := doubles.NewSpyVersionControlRepository()

		// when
		parent, err := newDetector(vcs).ParentBranch(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "origin/main", parent)
		assert.Equal(t, []string{"origin/main"}, vcs.FetchCalls)
	})

	t.Run("should fall back to a local default branch", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := doubles.NewSpyVersionControlRepository()
		vcs.ExistingRefs = map[string]bool{"master": true}
		vcs.FetchErr = assert.AnError

		// when
		parent, err := newDetector(vcs).ParentBranch(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "master", parent)
		assert.Equal(t, []string{"origin/main", "origin/master"}, vcs.FetchCalls)
	})

	t.Run("should fail when no default branch exists", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := doubles.NewSpyVersionControlRepository()
		vcs.ExistingRefs = map[string]bool{}

		// when
		_, err := newDetector(vcs).ParentBranch(context.Background())

		// then
		require.ErrorIs(t, err, entities.ErrNoRepositoryHistory)
	})
}

func TestChangeDetectorChangedPackages(t *testing.T) {
	t.Parallel()

	t.Run("should collapse changed files to their packages", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := doubles.NewSpyVersionControlRepository()
		vcs.MergeBaseResult = "abc123"
		vcs.MergeBaseErr = nil
		vcs.DiffOutput = "M\tpackagec/setup.cfg\n" +
			"A\tpackagec/company/packagec/new.py\n" +
			"M\tpackagea/README.md\n" +
			"M\tREADME.md\n" +
			"A\tdocs/index.md\n"

		// when
		changed, err := newDetector(vcs).ChangedPackages(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"company_packagec"}, monorepo.SortedNames(changed))
		assert.Equal(t, []string{"abc123"}, vcs.DiffRefs)
	})

	t.Run("should ignore changes confined to an ignored file name", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := doubles.NewSpyVersionControlRepository()
		vcs.DiffOutput = "M\tpackagea/README.md\n"

		// when
		changed, err := newDetector(vcs).ChangedPackages(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("should diff against the parent when there is no merge-base", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := doubles.NewSpyVersionControlRepository()
		vcs.DiffOutput = ""

		// when
		changed, err := newDetector(vcs).ChangedPackages(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, changed)
		assert.Equal(t, []string{"origin/main"}, vcs.DiffRefs)
	})

	t.Run("should propagate diff failures", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := doubles.NewSpyVersionControlRepository()
		vcs.DiffErr = assert.AnError

		// when
		_, err := newDetector(vcs).ChangedPackages(context.Background())

		// then
		require.ErrorIs(t, err, assert.AnError)
	})
}
