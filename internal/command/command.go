package command

import (
	"context"
	"os/exec"
	"strings"
)

// Runner abstracts process execution so the engine can be tested without
// touching the host. Run blocks until the command exits and returns its
// combined output; a nil error means the command reported success.
//
// Run may never return at all: a successful power transition usually tears
// the calling process down first. Callers must treat that as success, not
// hang detection, and must not wrap Run in a timeout. Context cancellation
// must never kill a command that has already started: a half-killed power
// tool can leave the host in a worse state than either outcome. The context
// is for callers that gate whether further commands start at all.
type Runner interface {
	Run(ctx context.Context, path string, args []string, input string) ([]byte, error)
}

// ExecRunner runs commands with os/exec. It is the production Runner.
type ExecRunner struct{}

// Run executes the command synchronously. A non-empty input is piped to the
// command's stdin. Spawn failures and non-zero exits both surface as errors;
// the engine treats them the same way. The context is deliberately ignored:
// a started command always runs to completion.
func (ExecRunner) Run(_ context.Context, path string, args []string, input string) ([]byte, error) {
	cmd := exec.Command(path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	return cmd.CombinedOutput()
}
