package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/monorepo"
	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

const changelogFileName = "CHANGELOG.md"

// New is the interface for the new command.
type New interface {
	Execute(ctx context.Context, settings *entities.Settings, opts NewOptions) error
}

// NewOptions holds runtime options for new.
type NewOptions struct {
	Root string
	Name string // "<namespace>.<name>"
}

// NewCommand scaffolds a package and refreshes the monorepo files.
type NewCommand struct {
	metadata repositories.MetadataRepository
	scaffold repositories.ScaffoldRepository
}

// NewNewCommand creates a new NewCommand.
func NewNewCommand(
	metadata repositories.MetadataRepository,
	scaffold repositories.ScaffoldRepository,
) *NewCommand {
	return &NewCommand{metadata: metadata, scaffold: scaffold}
}

// Execute creates the package directory named after the last name segment.
func (it *NewCommand) Execute(_ context.Context, _ *entities.Settings, opts NewOptions) error {
	name, err := entities.ParsePackageName(opts.Name)
	if err != nil {
		return err
	}

	dir := filepath.Join(opts.Root, name.Leaf)
	if _, statErr := os.Stat(dir); statErr == nil {
		return fmt.Errorf("%w: %s", entities.ErrPackageExists, name.Leaf)
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", dir, statErr)
	}

	if err = it.scaffold.WritePackage(dir, name); err != nil {
		return err
	}
	logger.Infof("Created project `%s`", name.FullName())

	it.recordChangelog(opts.Root, name)

	workspace := monorepo.NewWorkspace(opts.Root, it.metadata)
	if _, err = syncMonorepo(workspace, it.scaffold); err != nil {
		return err
	}

	logger.Infof("Install it with `monopy install %s`", name.FullName())
	return nil
}

// recordChangelog adds the package to the Unreleased section of the root changelog, when there is one.
func (it *NewCommand) recordChangelog(root string, name *entities.PackageName) {
	path := filepath.Join(root, changelogFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Debugf("No %s to update: %v", changelogFileName, err)
		return
	}

	entry := fmt.Sprintf("- added the `%s` package", name.Dotted())
	updated := entities.InsertChangelogEntry(string(content), entities.ChangelogAdded, []string{entry})
	if updated == string(content) {
		return
	}

	if err = os.WriteFile(path, []byte(updated), 0o644); err != nil { //nolint:gosec // same mode as scaffolded files
		logger.Warnf("Failed to update %s: %v", changelogFileName, err)
	}
}
