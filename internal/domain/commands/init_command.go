package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/monorepo"
	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

// Init is the interface for the init command.
type Init interface {
	Execute(ctx context.Context, opts InitOptions) error
}

// InitOptions holds runtime options for init.
type InitOptions struct {
	Root string
}

// InitCommand turns an empty directory into a monorepo.
type InitCommand struct {
	scaffold repositories.ScaffoldRepository
	vcs      repositories.VersionControlRepository
}

// NewInitCommand creates a new InitCommand.
func NewInitCommand(
	scaffold repositories.ScaffoldRepository,
	vcs repositories.VersionControlRepository,
) *InitCommand {
	return &InitCommand{scaffold: scaffold, vcs: vcs}
}

// Execute writes the monorepo files and initializes version control.
// Only editor, tooling and virtualenv directories may already exist in the root.
func (it *InitCommand) Execute(ctx context.Context, opts InitOptions) error {
	entries, err := os.ReadDir(opts.Root)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.Root, err)
	}

	unexpected := make([]string, 0)
	for _, entry := range entries {
		if !monorepo.IsReservedDir(entry.Name()) {
			unexpected = append(unexpected, entry.Name())
		}
	}
	if len(unexpected) > 0 {
		return fmt.Errorf("%w, found: %s", entities.ErrDirectoryNotEmpty, strings.Join(unexpected, ", "))
	}

	if err = it.scaffold.WriteMonorepo(opts.Root, entities.DefaultSettings()); err != nil {
		return err
	}
	if err = it.vcs.Init(ctx, opts.Root); err != nil {
		return err
	}

	logger.Info("Done!")
	logger.Info("Create a new package with `monopy new <namespace>.<name>`")
	return nil
}
