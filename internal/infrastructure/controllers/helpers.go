package controllers

import (
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/monopy/internal/domain/entities"
)

const (
	// RootFlag is the persistent flag holding the monorepo root.
	RootFlag = "root"
	// DryRunFlag is shared by the commands that can preview their work.
	DryRunFlag = "dry-run"
)

// resolveRoot returns the absolute monorepo root given on the command line.
func resolveRoot(cmd *cobra.Command) (string, error) {
	root, _ := cmd.Flags().GetString(RootFlag)
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("invalid root %q: %w", root, err)
	}
	return abs, nil
}

// loadMonorepo resolves the root and reads its settings, failing when it was never initialized.
func loadMonorepo(cmd *cobra.Command) (string, *entities.Settings, error) {
	root, err := resolveRoot(cmd)
	if err != nil {
		return "", nil, err
	}

	settings, err := entities.LoadSettings(root)
	if err != nil {
		return "", nil, err
	}
	logger.Debugf("Using monorepo at %s", root)
	return root, settings, nil
}

// explainHistoryError adds guidance when there is nothing to compare the working tree against.
func explainHistoryError(err error, alternatives string) error {
	if errors.Is(err, entities.ErrNoRepositoryHistory) {
		logger.Warnf("Could not detect changes: %v", err)
		logger.Warnf("Commit your work at least once, or use %s", alternatives)
	}
	return err
}
