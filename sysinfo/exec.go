package sysinfo

import (
	"context"
	"os/exec"
	"time"
)

// DefaultCommandTimeout bounds external commands when no timeout is configured.
const DefaultCommandTimeout = 1500 * time.Millisecond

// CommandRunner abstracts command execution so collectors can be tested
// without the real package managers.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// LocalRunner executes commands on the local host with a timeout.
type LocalRunner struct {
	Timeout time.Duration
}

// Run runs a command and returns raw stdout bytes.
func (r LocalRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return exec.CommandContext(ctx, name, args...).Output()
}
