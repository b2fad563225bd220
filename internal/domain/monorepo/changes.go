package monorepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

// previousCommit is the parent ref used when already on a default branch.
const previousCommit = "HEAD~1"

// ChangeDetector finds the packages touched since the parent branch.
type ChangeDetector struct {
	workspace *Workspace
	vcs       repositories.VersionControlRepository
	settings  *entities.Settings
}

// NewChangeDetector creates a ChangeDetector for the workspace.
func NewChangeDetector(
	workspace *Workspace,
	vcs repositories.VersionControlRepository,
	settings *entities.Settings,
) *ChangeDetector {
	return &ChangeDetector{workspace: workspace, vcs: vcs, settings: settings}
}

// ParentBranch returns the ref to diff against.
//
// On a default branch this is the previous commit (or the branch itself when HEAD
// has no parent). Elsewhere the remote tracking default branch is preferred,
// then the local one.
func (d *ChangeDetector) ParentBranch(ctx context.Context) (string, error) {
	root := d.workspace.Root()
	if !d.vcs.HasHistory(ctx, root) {
		return "", entities.ErrNoRepositoryHistory
	}

	current, err := d.vcs.CurrentBranch(ctx, root)
	if err != nil {
		logger.Debugf("Could not detect the current branch: %v", err)
	}

	for _, branch := range d.settings.DefaultBranches {
		if current != branch {
			continue
		}
		if d.vcs.HasParentCommit(ctx, root) {
			return previousCommit, nil
		}
		return branch, nil
	}

	for _, branch := range d.settings.DefaultBranches {
		if fetchErr := d.vcs.FetchBranch(ctx, root, d.settings.Remote, branch); fetchErr != nil {
			logger.Debugf("Could not fetch %s/%s: %v", d.settings.Remote, branch, fetchErr)
		}
		remoteRef := d.settings.Remote + "/" + branch
		if d.vcs.ReferenceExists(ctx, root, remoteRef) {
			return remoteRef, nil
		}
	}

	for _, branch := range d.settings.DefaultBranches {
		if d.vcs.ReferenceExists(ctx, root, branch) {
			return branch, nil
		}
	}

	return "", fmt.Errorf(
		"%w: none of the default branches (%s) exist",
		entities.ErrNoRepositoryHistory, strings.Join(d.settings.DefaultBranches, ", "),
	)
}

// ChangedFiles lists the files that differ between the working tree and the
// merge-base of HEAD and ref (or ref itself when there is none).
func (d *ChangeDetector) ChangedFiles(ctx context.Context, ref string) ([]entities.ChangeRecord, error) {
	root := d.workspace.Root()

	base := ref
	if mergeBase, err := d.vcs.MergeBase(ctx, root, ref); err == nil {
		base = mergeBase
	} else {
		logger.Debugf("No merge-base with %s, diffing against it directly: %v", ref, err)
	}

	output, err := d.vcs.DiffNameStatus(ctx, root, base)
	if err != nil {
		return nil, fmt.Errorf("failed to diff against %s: %w", ref, err)
	}

	return entities.ParseNameStatus(output), nil
}

// ChangedPackages returns the packages owning at least one non-ignored changed file.
func (d *ChangeDetector) ChangedPackages(ctx context.Context) (map[string]*entities.Package, error) {
	parent, err := d.ParentBranch(ctx)
	if err != nil {
		return nil, err
	}

	records, err := d.ChangedFiles(ctx, parent)
	if err != nil {
		return nil, err
	}

	changed := d.packagesOf(records)

	if len(changed) > 0 {
		logger.Infof(
			"The following packages have changes compared since branch: `%s`:\n\t%s\n",
			parent, strings.Join(SortedNames(changed), "\n\t"),
		)
	} else {
		logger.Info("Either nothing has changed, or there are no valid packages in your current directory.")
	}

	return changed, nil
}

// packagesOf maps change records to their owning packages, collapsing by name.
func (d *ChangeDetector) packagesOf(records []entities.ChangeRecord) map[string]*entities.Package {
	changed := make(map[string]*entities.Package)
	for _, record := range records {
		if d.isIgnored(record) {
			logger.Debugf("Ignoring change %s %s", record.Type, record.Path)
			continue
		}

		pkg, err := d.workspace.PackageByDir(record.TopLevelDir())
		if err != nil {
			continue
		}

		if _, ok := changed[pkg.Name]; !ok {
			changed[pkg.Name] = pkg
		}
	}
	return changed
}

// isIgnored matches the ignore patterns against the file name and the full path.
func (d *ChangeDetector) isIgnored(record entities.ChangeRecord) bool {
	for _, pattern := range d.settings.Ignore {
		if matched, _ := doublestar.Match(pattern, record.BaseName()); matched {
			return true
		}
		if matched, _ := doublestar.Match(pattern, record.Path); matched {
			return true
		}
	}
	return false
}
