package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

// VersionControlRepository implements repositories.VersionControlRepository.
// Repository inspection goes through go-git; fetch and diff shell out to git,
// which knows about credentials and the working tree.
type VersionControlRepository struct {
	gitBinary string
}

// NewVersionControlRepository creates a git backed version control oracle.
func NewVersionControlRepository() repositories.VersionControlRepository {
	return &VersionControlRepository{gitBinary: "git"}
}

// Init creates an empty repository at root.
func (r *VersionControlRepository) Init(_ context.Context, root string) error {
	if _, err := gogit.PlainInit(root, false); err != nil {
		if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
			logger.Debugf("Repository already exists in %s", root)
			return nil
		}
		return fmt.Errorf("git init: %w", err)
	}
	return nil
}

// HasHistory reports whether root is a repository with at least one commit.
func (r *VersionControlRepository) HasHistory(_ context.Context, root string) bool {
	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return false
	}
	_, err = repo.Head()
	return err == nil
}

// CurrentBranch returns the short name of the checked-out branch, even before the first commit.
func (r *VersionControlRepository) CurrentBranch(_ context.Context, root string) (string, error) {
	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return "", fmt.Errorf("opening repository: %w", err)
	}

	head, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("reading HEAD: %w", err)
	}

	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		return head.Target().Short(), nil
	}
	return "", errors.New("HEAD is detached")
}

// HasParentCommit reports whether HEAD has at least one parent.
func (r *VersionControlRepository) HasParentCommit(_ context.Context, root string) bool {
	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return false
	}
	head, err := repo.Head()
	if err != nil {
		return false
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return false
	}
	return commit.NumParents() > 0
}

// ReferenceExists reports whether ref resolves to a commit.
func (r *VersionControlRepository) ReferenceExists(_ context.Context, root, ref string) bool {
	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return false
	}
	_, err = repo.ResolveRevision(plumbing.Revision(ref))
	return err == nil
}

// MergeBase returns the best common ancestor of HEAD and ref.
func (r *VersionControlRepository) MergeBase(_ context.Context, root, ref string) (string, error) {
	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return "", fmt.Errorf("opening repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}
	headCommit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return "", fmt.Errorf("getting HEAD commit: %w", err)
	}

	refHash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", ref, err)
	}
	refCommit, err := repo.CommitObject(*refHash)
	if err != nil {
		return "", fmt.Errorf("getting %s commit: %w", ref, err)
	}

	bases, err := headCommit.MergeBase(refCommit)
	if err != nil {
		return "", fmt.Errorf("computing merge-base with %s: %w", ref, err)
	}
	if len(bases) == 0 {
		return "", fmt.Errorf("HEAD and %s have no common ancestor", ref)
	}
	return bases[0].Hash.String(), nil
}

// FetchBranch fetches remote/branch into its remote tracking ref.
func (r *VersionControlRepository) FetchBranch(ctx context.Context, root, remote, branch string) error {
	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}
	if _, err = repo.Remote(remote); err != nil {
		return fmt.Errorf("remote %q: %w", remote, err)
	}

	refspec := fmt.Sprintf("%s:refs/remotes/%s/%s", branch, remote, branch)
	_, err = r.run(ctx, root, "fetch", "--quiet", remote, refspec)
	return err
}

// DiffNameStatus returns the name-status diff between the working tree and ref.
// Renames are reported as a deletion plus an addition.
func (r *VersionControlRepository) DiffNameStatus(ctx context.Context, root, ref string) (string, error) {
	return r.run(ctx, root, "-c", "core.quotePath=false", "diff", "--name-status", "--no-renames", ref, "--")
}

func (r *VersionControlRepository) run(ctx context.Context, root string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.gitBinary, args...)
	cmd.Dir = root

	logger.Debugf("Running: git %s", strings.Join(args, " "))

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		stderr := ""
		if errors.As(err, &exitErr) {
			stderr = string(exitErr.Stderr)
		}
		return "", &entities.ProcessError{
			Command: append([]string{r.gitBinary}, args...),
			Output:  stderr,
			Err:     err,
		}
	}
	return string(output), nil
}
