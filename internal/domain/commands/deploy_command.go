package commands

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/monorepo"
	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

const deployScriptName = "deploy.py"

// Deploy is the interface for the deploy command.
type Deploy interface {
	Execute(ctx context.Context, settings *entities.Settings, opts DeployOptions) error
}

// DeployOptions holds runtime options for deploy.
type DeployOptions struct {
	Root        string
	PackageName string // deploy only this package instead of the impacted ones
}

// DeployCommand runs the deploy script of each selected package.
type DeployCommand struct {
	metadata repositories.MetadataRepository
	vcs      repositories.VersionControlRepository
	process  repositories.ProcessRepository
}

// NewDeployCommand creates a new DeployCommand.
func NewDeployCommand(
	metadata repositories.MetadataRepository,
	vcs repositories.VersionControlRepository,
	process repositories.ProcessRepository,
) *DeployCommand {
	return &DeployCommand{metadata: metadata, vcs: vcs, process: process}
}

// Execute deploys in name order and stops at the first failing script.
func (it *DeployCommand) Execute(ctx context.Context, settings *entities.Settings, opts DeployOptions) error {
	workspace := monorepo.NewWorkspace(opts.Root, it.metadata)

	var packages []*entities.Package
	if opts.PackageName != "" {
		pkg, err := workspace.PackageByName(opts.PackageName)
		if err != nil {
			return err
		}
		packages = []*entities.Package{pkg}
	} else {
		all, err := workspace.Packages()
		if err != nil {
			return err
		}
		packages, err = impactedPackages(ctx, workspace, it.vcs, settings, all)
		if err != nil {
			return err
		}
	}

	if len(packages) == 0 {
		logger.Info("Nothing to deploy.")
		return nil
	}

	for _, pkg := range packages {
		if err := it.deployPackage(ctx, settings, opts.Root, pkg); err != nil {
			return err
		}
	}
	return nil
}

func (it *DeployCommand) deployPackage(
	ctx context.Context,
	settings *entities.Settings,
	root string,
	pkg *entities.Package,
) error {
	script := filepath.Join(pkg.Dir, deployScriptName)
	if _, err := os.Stat(script); errors.Is(err, fs.ErrNotExist) {
		logger.Warnf("`%s` has no %s, skipping", pkg.Name, deployScriptName)
		return nil
	}

	logger.Infof("Deploying `%s`...", pkg.Name)
	output, err := it.process.Run(ctx, root, settings.Python, script)
	if output != "" {
		logger.Info(output)
	}
	return err
}
