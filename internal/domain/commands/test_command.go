package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/monorepo"
	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

// Test is the interface for the test command.
type Test interface {
	Execute(ctx context.Context, settings *entities.Settings, opts TestOptions) error
}

// TestOptions holds runtime options for test.
type TestOptions struct {
	Root   string
	DryRun bool   // print the impacted packages without running anything
	All    bool   // run every tox environment
	Name   string // run only the environments of this package
}

// TestCommand runs the tox environments of the packages impacted by the current changes.
type TestCommand struct {
	metadata repositories.MetadataRepository
	vcs      repositories.VersionControlRepository
	process  repositories.ProcessRepository
	scaffold repositories.ScaffoldRepository
}

// NewTestCommand creates a new TestCommand.
func NewTestCommand(
	metadata repositories.MetadataRepository,
	vcs repositories.VersionControlRepository,
	process repositories.ProcessRepository,
	scaffold repositories.ScaffoldRepository,
) *TestCommand {
	return &TestCommand{metadata: metadata, vcs: vcs, process: process, scaffold: scaffold}
}

// Execute syncs tox.ini, then runs the test runner for the selected environments.
func (it *TestCommand) Execute(ctx context.Context, settings *entities.Settings, opts TestOptions) error {
	workspace := monorepo.NewWorkspace(opts.Root, it.metadata)

	packages, err := syncMonorepo(workspace, it.scaffold)
	if err != nil {
		return err
	}
	warnPinConflicts(packages)

	command, err := it.buildTestCommand(ctx, workspace, settings, opts, packages)
	if err != nil {
		return err
	}
	if len(command) == 0 {
		return nil
	}

	logger.Infof("Running: %s", strings.Join(command, " "))
	output, err := it.process.Run(ctx, opts.Root, command[0], command[1:]...)
	if output != "" {
		logger.Info(output)
	}
	return err
}

// buildTestCommand returns the runner invocation, or nothing when no environment must run.
func (it *TestCommand) buildTestCommand(
	ctx context.Context,
	workspace *monorepo.Workspace,
	settings *entities.Settings,
	opts TestOptions,
	all []*entities.Package,
) ([]string, error) {
	if opts.All {
		logger.Info("Testing all packages...")
		if opts.DryRun {
			logger.Infof("Packages that would be tested:\n\t%s", strings.Join(packageNames(all), "\n\t"))
			return nil, nil
		}
		return []string{settings.TestRunner}, nil
	}

	var packages []*entities.Package
	if opts.Name != "" {
		pkg, err := workspace.PackageByName(opts.Name)
		if err != nil {
			return nil, err
		}
		packages = []*entities.Package{pkg}
	} else {
		impacted, err := impactedPackages(ctx, workspace, it.vcs, settings, all)
		if err != nil {
			return nil, err
		}
		packages = impacted
	}

	if len(packages) == 0 {
		logger.Info("No packages require testing.")
		return nil, nil
	}
	logger.Infof("Packages that require testing:\n\t%s", strings.Join(packageNames(packages), "\n\t"))

	if opts.DryRun {
		return nil, nil
	}

	envs := make([]string, 0)
	for _, pkg := range packages {
		pkgEnvs := pkg.ToolchainEnvs()
		if len(pkgEnvs) == 0 {
			logger.Warnf("`%s` declares no python_requires, skipping its tests", pkg.Name)
			continue
		}
		envs = append(envs, pkgEnvs...)
	}
	if len(envs) == 0 {
		if opts.Name != "" {
			return nil, fmt.Errorf("package %s has no test environments", opts.Name)
		}
		return nil, nil
	}

	return []string{settings.TestRunner, "-e", strings.Join(envs, ",")}, nil
}
