//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"errors"

	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

// SpyVersionControlRepository implements repositories.VersionControlRepository as a configurable spy.
type SpyVersionControlRepository struct {
	// --- Init ---
	InitErr   error
	InitRoots []string

	// --- HasHistory / HasParentCommit ---
	History   bool
	HasParent bool

	// --- CurrentBranch ---
	Branch    string
	BranchErr error

	// --- ReferenceExists ---
	ExistingRefs map[string]bool

	// --- MergeBase ---
	MergeBaseResult string
	MergeBaseErr    error

	// --- FetchBranch ---
	FetchErr   error
	FetchCalls []string // "remote/branch"

	// --- DiffNameStatus ---
	DiffOutput string
	DiffErr    error
	DiffRefs   []string
}

var _ repositories.VersionControlRepository = (*SpyVersionControlRepository)(nil)

// NewSpyVersionControlRepository returns a spy on a feature branch with history and
// a fetchable origin/main.
func NewSpyVersionControlRepository() *SpyVersionControlRepository {
	return &SpyVersionControlRepository{
		History:      true,
		HasParent:    true,
		Branch:       "feature",
		ExistingRefs: map[string]bool{"origin/main": true, "main": true},
		MergeBaseErr: errors.New("no merge-base configured"),
	}
}

func (s *SpyVersionControlRepository) Init(_ context.Context, root string) error {
	s.InitRoots = append(s.InitRoots, root)
	return s.InitErr
}

func (s *SpyVersionControlRepository) HasHistory(_ context.Context, _ string) bool {
	return s.History
}

func (s *SpyVersionControlRepository) CurrentBranch(_ context.Context, _ string) (string, error) {
	return s.Branch, s.BranchErr
}

func (s *SpyVersionControlRepository) HasParentCommit(_ context.Context, _ string) bool {
	return s.HasParent
}

func (s *SpyVersionControlRepository) ReferenceExists(_ context.Context, _, ref string) bool {
	return s.ExistingRefs[ref]
}

func (s *SpyVersionControlRepository) MergeBase(_ context.Context, _, _ string) (string, error) {
	return s.MergeBaseResult, s.MergeBaseErr
}

func (s *SpyVersionControlRepository) FetchBranch(_ context.Context, _, remote, branch string) error {
	s.FetchCalls = append(s.FetchCalls, remote+"/"+branch)
	return s.FetchErr
}

func (s *SpyVersionControlRepository) DiffNameStatus(_ context.Context, _, ref string) (string, error) {
	s.DiffRefs = append(s.DiffRefs, ref)
	return s.DiffOutput, s.DiffErr
}
