package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/monopy/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []any{
		NewInitController,
		NewNewController,
		NewTestController,
		NewInstallController,
		NewDeployController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	initController *InitController,
	newController *NewController,
	testController *TestController,
	installController *InstallController,
	deployController *DeployController,
) *[]entities.Controller {
	return &[]entities.Controller{
		initController,
		newController,
		testController,
		installController,
		deployController,
	}
}
