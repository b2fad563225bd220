package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/monopy/internal/domain/commands"
	"github.com/rios0rios0/monopy/internal/domain/entities"
)

// TestController handles the "test" subcommand.
type TestController struct {
	command commands.Test
}

// NewTestController creates a new TestController.
func NewTestController(command commands.Test) *TestController {
	return &TestController{command: command}
}

// GetBind returns the Cobra command metadata for the test controller.
func (it *TestController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "test",
		Short: "Test changed packages and their dependents",
		Long: `Detect the packages changed since the parent branch, extend them with
every package depending on them and run their tox environments.

On a default branch changes are compared with the previous commit,
elsewhere with the merge-base of the default branch.`,
		Args: cobra.NoArgs,
	}
}

// Execute runs the tests selected by the flags.
func (it *TestController) Execute(cmd *cobra.Command, _ []string) error {
	root, settings, err := loadMonorepo(cmd)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool(DryRunFlag)
	all, _ := cmd.Flags().GetBool("all")
	name, _ := cmd.Flags().GetString("name")

	err = it.command.Execute(context.Background(), settings, commands.TestOptions{
		Root:   root,
		DryRun: dryRun,
		All:    all,
		Name:   name,
	})
	return explainHistoryError(err, "`monopy test --all` or `monopy test --name NAME`")
}

// AddFlags adds the test-specific flags to the given Cobra command.
func (it *TestController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(DryRunFlag, false, "Show the packages to test without running them")
	cmd.Flags().Bool("all", false, "Test every package")
	cmd.Flags().String("name", "", "Test only this package")
	cmd.MarkFlagsMutuallyExclusive("all", "name")
}
