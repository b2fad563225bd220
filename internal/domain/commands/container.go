package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []any{
		NewInitCommand,
		NewNewCommand,
		NewTestCommand,
		NewInstallCommand,
		NewDeployCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []any{
		func(impl *InitCommand) Init { return impl },
		func(impl *NewCommand) New { return impl },
		func(impl *TestCommand) Test { return impl },
		func(impl *InstallCommand) Install { return impl },
		func(impl *DeployCommand) Deploy { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
