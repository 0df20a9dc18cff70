//go:build windows

package job

import (
	"context"
	"os/exec"
	"syscall"
)

// newCommand builds the external process command. On Windows the console
// window is hidden so the download does not flash a terminal over the UI.
func newCommand(ctx context.Context, exe string, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	return cmd
}
