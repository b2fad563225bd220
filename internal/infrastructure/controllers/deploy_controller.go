package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/monopy/internal/domain/commands"
	"github.com/rios0rios0/monopy/internal/domain/entities"
)

// DeployController handles the "deploy" subcommand.
type DeployController struct {
	command commands.Deploy
}

// NewDeployController creates a new DeployController.
func NewDeployController(command commands.Deploy) *DeployController {
	return &DeployController{command: command}
}

// GetBind returns the Cobra command metadata for the deploy controller.
func (it *DeployController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "deploy",
		Short: "Run the deploy script of changed packages",
		Long: `Run <package>/deploy.py of a single package, or of every package
impacted by the changes since the parent branch.`,
		Args: cobra.NoArgs,
	}
}

// Execute deploys the selected packages.
func (it *DeployController) Execute(cmd *cobra.Command, _ []string) error {
	root, settings, err := loadMonorepo(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("package-name")
	err = it.command.Execute(context.Background(), settings, commands.DeployOptions{
		Root:        root,
		PackageName: name,
	})
	return explainHistoryError(err, "`monopy deploy --package-name NAME`")
}

// AddFlags adds the deploy-specific flags to the given Cobra command.
func (it *DeployController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("package-name", "", "Deploy only this package")
}
