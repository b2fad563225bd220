//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/monopy/internal/domain/commands"
	"github.com/rios0rios0/monopy/internal/domain/entities"
)

// StubInstallCommand is a stub implementation of commands.Install.
type StubInstallCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.InstallOptions
}

var _ commands.Install = (*StubInstallCommand)(nil)

func (s *StubInstallCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.InstallOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
