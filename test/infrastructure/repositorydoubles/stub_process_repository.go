//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/monopy/internal/domain/repositories"
)

// ProcessResult is a canned response of SpyProcessRepository.
type ProcessResult struct {
	Output string
	Err    error
}

// ProcessCall records a single invocation of Run.
type ProcessCall struct {
	Dir  string
	Name string
	Args []string
}

// CommandLine joins the program and its arguments with spaces.
func (c ProcessCall) CommandLine() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// SpyProcessRepository implements repositories.ProcessRepository, replaying Results in order.
// Once Results is exhausted every call succeeds with no output.
type SpyProcessRepository struct {
	Results []ProcessResult
	Calls   []ProcessCall
}

var _ repositories.ProcessRepository = (*SpyProcessRepository)(nil)

func (s *SpyProcessRepository) Run(_ context.Context, dir, name string, args ...string) (string, error) {
	s.Calls = append(s.Calls, ProcessCall{Dir: dir, Name: name, Args: args})
	if len(s.Results) == 0 {
		return "", nil
	}
	result := s.Results[0]
	s.Results = s.Results[1:]
	return result.Output, result.Err
}

// CommandLines returns every recorded call as a command line.
func (s *SpyProcessRepository) CommandLines() []string {
	lines := make([]string, 0, len(s.Calls))
	for _, call := range s.Calls {
		lines = append(lines, call.CommandLine())
	}
	return lines
}
