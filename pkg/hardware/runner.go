package hardware

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// Runner executes one inspection command and returns its standard output.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands on the live system, each bounded by Timeout.
type ExecRunner struct {
	Timeout time.Duration
}

// Output implements Runner.
func (r ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// output runs a command through r and folds every failure into "".
func output(ctx context.Context, r Runner, name string, args ...string) string {
	out, err := r.Output(ctx, name, args...)
	if err != nil {
		return ""
	}
	return strings.ToLower(out)
}
