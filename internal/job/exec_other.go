//go:build !windows

package job

import (
	"context"
	"os/exec"
)

func newCommand(ctx context.Context, exe string, args []string) *exec.Cmd {
	return exec.CommandContext(ctx, exe, args...)
}
