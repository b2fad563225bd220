package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/monorepo"
	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

// noMatchingDistribution is what pip prints when neither the wheelhouse nor the index has a package.
const noMatchingDistribution = "No matching distribution found"

// Install is the interface for the install command.
type Install interface {
	Execute(ctx context.Context, settings *entities.Settings, opts InstallOptions) error
}

// InstallOptions holds runtime options for install.
type InstallOptions struct {
	Root   string
	Name   string
	DryRun bool
}

// InstallCommand installs a package after its local dependencies, building wheels on demand.
type InstallCommand struct {
	metadata repositories.MetadataRepository
	process  repositories.ProcessRepository
}

// NewInstallCommand creates a new InstallCommand.
func NewInstallCommand(
	metadata repositories.MetadataRepository,
	process repositories.ProcessRepository,
) *InstallCommand {
	return &InstallCommand{metadata: metadata, process: process}
}

// Execute installs every package of the install order, stopping at the first failure.
func (it *InstallCommand) Execute(ctx context.Context, settings *entities.Settings, opts InstallOptions) error {
	workspace := monorepo.NewWorkspace(opts.Root, it.metadata)

	pkg, err := workspace.PackageByName(opts.Name)
	if err != nil {
		return err
	}

	order, err := monorepo.NewInstallOrderer(workspace).Order(pkg)
	if err != nil {
		return err
	}

	logger.Infof("Installing package: `%s`...", pkg.Name)
	if opts.DryRun {
		logger.Infof("Install order:\n\t%s", strings.Join(packageNames(order), "\n\t"))
		return nil
	}

	wheelhouse := settings.WheelhouseDir(opts.Root)
	if err = os.MkdirAll(wheelhouse, 0o755); err != nil { //nolint:gosec // wheelhouse is shared with pip
		return fmt.Errorf("failed to create wheelhouse: %w", err)
	}

	for _, p := range order {
		if err = it.installPackage(ctx, settings, opts.Root, wheelhouse, p); err != nil {
			return err
		}
	}

	logger.Info("Installation complete.")
	return nil
}

// installPackage tries the wheelhouse first and builds the wheel from source once when pip finds nothing.
func (it *InstallCommand) installPackage(
	ctx context.Context,
	settings *entities.Settings,
	root, wheelhouse string,
	pkg *entities.Package,
) error {
	install := []string{"install", "-f", wheelhouse, pkg.Name}

	output, err := it.process.Run(ctx, root, settings.Pip, install...)
	if err == nil {
		logger.Debug(output)
		return nil
	}
	if !strings.Contains(output, noMatchingDistribution) {
		return err
	}

	logger.Infof("Building wheel for `%s`...", pkg.Name)
	output, err = it.process.Run(ctx, root, settings.Pip, "wheel", "-f", wheelhouse, "-w", wheelhouse, pkg.Dir)
	if err != nil {
		return fmt.Errorf("failed to build wheel for %s: %w", pkg.Name, err)
	}
	logger.Debug(output)

	output, err = it.process.Run(ctx, root, settings.Pip, install...)
	if err != nil {
		if strings.Contains(output, noMatchingDistribution) {
			return errors.Join(fmt.Errorf("%w: %s", entities.ErrNoMatchingDistribution, pkg.Name), err)
		}
		return err
	}
	logger.Debug(output)
	return nil
}
