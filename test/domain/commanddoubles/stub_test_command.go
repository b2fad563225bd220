//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/monopy/internal/domain/commands"
	"github.com/rios0rios0/monopy/internal/domain/entities"
)

// StubTestCommand is a stub implementation of commands.Test.
type StubTestCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.TestOptions
}

var _ commands.Test = (*StubTestCommand)(nil)

func (s *StubTestCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.TestOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
