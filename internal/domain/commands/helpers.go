package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/monorepo"
	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

// syncMonorepo regenerates the files that list every package.
func syncMonorepo(
	workspace *monorepo.Workspace,
	scaffold repositories.ScaffoldRepository,
) ([]*entities.Package, error) {
	packages, err := workspace.Packages()
	if err != nil {
		return nil, err
	}
	if err = scaffold.Sync(workspace.Root(), packages); err != nil {
		return nil, fmt.Errorf("failed to sync monorepo files: %w", err)
	}
	return packages, nil
}

// impactedPackages returns the changed packages plus their dependents, sorted by name.
func impactedPackages(
	ctx context.Context,
	workspace *monorepo.Workspace,
	vcs repositories.VersionControlRepository,
	settings *entities.Settings,
	all []*entities.Package,
) ([]*entities.Package, error) {
	detector := monorepo.NewChangeDetector(workspace, vcs, settings)
	changed, err := detector.ChangedPackages(ctx)
	if err != nil {
		return nil, err
	}

	propagator := monorepo.NewImpactPropagator(monorepo.NewResolver(workspace))
	impacted, err := propagator.Impacted(changed, all)
	if err != nil {
		return nil, err
	}
	return monorepo.SortedPackages(impacted), nil
}

// warnPinConflicts logs external requirements pinned to different versions.
// Pins on local packages are skipped.
func warnPinConflicts(packages []*entities.Package) []entities.PinConflict {
	local := make(map[string]bool, len(packages))
	for _, pkg := range packages {
		local[monorepo.NormalizeName(pkg.Name)] = true
	}

	conflicts := make([]entities.PinConflict, 0)
	for _, conflict := range entities.FindPinConflicts(packages) {
		if local[monorepo.NormalizeName(conflict.Requirement)] {
			continue
		}
		logger.Warnf("Conflicting pins for %s", conflict)
		conflicts = append(conflicts, conflict)
	}
	return conflicts
}

func packageNames(packages []*entities.Package) []string {
	names := make([]string, 0, len(packages))
	for _, pkg := range packages {
		names = append(names, pkg.Name)
	}
	return names
}
