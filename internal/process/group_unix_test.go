//go:build !windows

package process

import (
	"os/exec"
	"testing"
)

func assertGroupSet(t *testing.T, cmd *exec.Cmd) {
	t.Helper()
	if !cmd.SysProcAttr.Setpgid {
		t.Error("Setpgid = false, want true")
	}
}
