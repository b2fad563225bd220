//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/monopy/internal/domain/commands"
	"github.com/rios0rios0/monopy/internal/domain/entities"
)

// StubNewCommand is a stub implementation of commands.New.
type StubNewCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.NewOptions
}

var _ commands.New = (*StubNewCommand)(nil)

func (s *StubNewCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.NewOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
