package process

import (
	"context"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/monopy/internal/domain/entities"
	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

// ExecProcessRepository implements repositories.ProcessRepository with os/exec.
type ExecProcessRepository struct{}

// NewExecProcessRepository creates a process runner.
func NewExecProcessRepository() repositories.ProcessRepository {
	return &ExecProcessRepository{}
}

// Run executes name with args in dir and returns the combined output.
func (r *ExecProcessRepository) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	command := append([]string{name}, args...)
	logger.Debugf("Running: %s", strings.Join(command, " "))

	output, err := cmd.CombinedOutput()
	outputStr := string(output)
	if err != nil {
		return outputStr, &entities.ProcessError{Command: command, Output: outputStr, Err: err}
	}
	return outputStr, nil
}
