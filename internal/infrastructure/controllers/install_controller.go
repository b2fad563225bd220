package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/monopy/internal/domain/commands"
	"github.com/rios0rios0/monopy/internal/domain/entities"
)

// InstallController handles the "install" subcommand.
type InstallController struct {
	command commands.Install
}

// NewInstallController creates a new InstallController.
func NewInstallController(command commands.Install) *InstallController {
	return &InstallController{command: command}
}

// GetBind returns the Cobra command metadata for the install controller.
func (it *InstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "install <name>",
		Short: "Install a package and its local dependencies",
		Long: `Install the local dependencies of a package, deepest first, then the
package itself. Wheels missing from the wheelhouse are built from source.`,
		Args: cobra.ExactArgs(1),
	}
}

// Execute installs the package given as the only argument.
func (it *InstallController) Execute(cmd *cobra.Command, args []string) error {
	root, settings, err := loadMonorepo(cmd)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool(DryRunFlag)
	return it.command.Execute(context.Background(), settings, commands.InstallOptions{
		Root:   root,
		Name:   args[0],
		DryRun: dryRun,
	})
}

// AddFlags adds the install-specific flags to the given Cobra command.
func (it *InstallController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(DryRunFlag, false, "Show the install order without installing")
}
