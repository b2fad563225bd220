package internal

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/monopy/internal/domain/commands"
	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/infrastructure/controllers"
	"github.com/rios0rios0/monopy/internal/infrastructure/repositories"
)

// RegisterProviders registers every layer of monopy with the DIG container,
// bottom-up so that each layer finds the providers it depends on.
func RegisterProviders(container *dig.Container) error {
	layers := []func(*dig.Container) error{
		repositories.RegisterProviders, // setup.cfg, git, processes, scaffolding
		entities.RegisterProviders,
		commands.RegisterProviders,
		controllers.RegisterProviders,
	}
	for _, register := range layers {
		if err := register(container); err != nil {
			return err
		}
	}

	return container.Provide(NewAppInternal)
}
