package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/monopy/internal/domain/commands"
	"github.com/rios0rios0/monopy/internal/domain/entities"
)

// InitController handles the "init" subcommand.
type InitController struct {
	command commands.Init
}

// NewInitController creates a new InitController.
func NewInitController(command commands.Init) *InitController {
	return &InitController{command: command}
}

// GetBind returns the Cobra command metadata for the init controller.
func (it *InitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "init",
		Short: "Initialize a monorepo in an empty directory",
		Long: `Write the monorepo settings, README, .gitignore, tox.ini and docs index
into the root directory and initialize a git repository there.

The directory must be empty, apart from editor, tox, wheelhouse
and virtualenv directories.`,
		Args: cobra.NoArgs,
	}
}

// Execute initializes the monorepo at --root.
func (it *InitController) Execute(cmd *cobra.Command, _ []string) error {
	root, err := resolveRoot(cmd)
	if err != nil {
		return err
	}
	return it.command.Execute(context.Background(), commands.InitOptions{Root: root})
}
