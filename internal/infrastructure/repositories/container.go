package repositories

import (
	"go.uber.org/dig"

	gitRepo "github.com/rios0rios0/monopy/internal/infrastructure/repositories/git"
	processRepo "github.com/rios0rios0/monopy/internal/infrastructure/repositories/process"
	scaffoldRepo "github.com/rios0rios0/monopy/internal/infrastructure/repositories/scaffold"
	setupcfgRepo "github.com/rios0rios0/monopy/internal/infrastructure/repositories/setupcfg"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(setupcfgRepo.NewMetadataRepository); err != nil {
		return err
	}
	if err := container.Provide(gitRepo.NewVersionControlRepository); err != nil {
		return err
	}
	if err := container.Provide(processRepo.NewExecProcessRepository); err != nil {
		return err
	}
	if err := container.Provide(scaffoldRepo.NewFileScaffoldRepository); err != nil {
		return err
	}

	return nil
}
