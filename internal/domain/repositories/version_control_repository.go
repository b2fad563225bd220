package repositories

import "context"

// VersionControlRepository is the version control oracle of a working tree.
// Every method takes the repository root explicitly.
type VersionControlRepository interface {
	// Init creates an empty repository at root.
	Init(ctx context.Context, root string) error

	// HasHistory reports whether root is a repository with at least one commit.
	HasHistory(ctx context.Context, root string) bool

	// CurrentBranch returns the short name of the checked-out branch.
	CurrentBranch(ctx context.Context, root string) (string, error)

	// HasParentCommit reports whether HEAD has at least one parent.
	HasParentCommit(ctx context.Context, root string) bool

	// ReferenceExists reports whether a short ref ("master", "origin/master") resolves.
	ReferenceExists(ctx context.Context, root, ref string) bool

	// MergeBase returns the hash of the best common ancestor of HEAD and ref.
	MergeBase(ctx context.Context, root, ref string) (string, error)

	// FetchBranch fetches remote/branch into refs/remotes/remote/branch.
	FetchBranch(ctx context.Context, root, remote, branch string) error

	// DiffNameStatus returns `git diff --name-status` output between the working tree and ref.
	DiffNameStatus(ctx context.Context, root, ref string) (string, error)
}
