package repositories

import "context"

// ProcessRepository runs external commands.
type ProcessRepository interface {
	// Run executes name with args in dir and returns the combined output.
	// A non-zero exit is reported as *entities.ProcessError carrying the output.
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}
