package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/monopy/internal/domain/commands"
	"github.com/rios0rios0/monopy/internal/domain/entities"
)

// NewController handles the "new" subcommand.
type NewController struct {
	command commands.New
}

// NewNewController creates a new NewController.
func NewNewController(command commands.New) *NewController {
	return &NewController{command: command}
}

// GetBind returns the Cobra command metadata for the new controller.
func (it *NewController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "new <namespace>.<name>",
		Short: "Create a new template package",
		Long: `Create a namespaced package in a directory named after its last segment,
e.g. "company.packagea" is created in ./packagea as "company_packagea".

Segments are lowercase letters and digits, starting with a letter.`,
		Args: cobra.ExactArgs(1),
	}
}

// Execute scaffolds the package given as the only argument.
func (it *NewController) Execute(cmd *cobra.Command, args []string) error {
	root, settings, err := loadMonorepo(cmd)
	if err != nil {
		return err
	}
	return it.command.Execute(context.Background(), settings, commands.NewOptions{Root: root, Name: args[0]})
}
