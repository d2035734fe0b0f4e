package search

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// runCommand executes a search utility and returns its stdout split into
// lines. The utility runs in its own process group; when the wall-clock
// bound elapses the whole group is killed so hung searches do not leak
// processes under concurrent use.
func runCommand(ctx context.Context, timeout time.Duration, name string, args ...string) ([]string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found", ErrUnavailable, name)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = time.Second

	runErr := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s exceeded %v", ErrTimeout, name, timeout)
		}
		return nil, ctxErr
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		// Exit status 1 means zero matches for both rg and grep.
		if errors.As(runErr, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("search: %s: %w", name, runErr)
	}
	return splitLines(stdout.String()), nil
}

// splitLines splits command output into match lines, dropping the trailing
// newline so empty output yields no lines.
func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
