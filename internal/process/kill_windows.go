//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// Configure is a no-op on Windows; KillProcessGroup kills the tree instead.
func Configure(cmd *exec.Cmd) {}

// KillProcessGroup kills a process and all its children using taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
