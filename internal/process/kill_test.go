package process

// Notes:
// - Real group kills are covered by the job runner tests, which start a
//   fake converter and shut the runner down while it sleeps.
// - Cannot test with PID 0 or real PIDs: that would signal this test's own
//   process group or unrelated processes.

import (
	"os/exec"
	"runtime"
	"testing"
)

// ---------------------------------------------------------------------------
// TestKillProcessGroup - Invalid PID Handling
// ---------------------------------------------------------------------------

func TestKillProcessGroup_InvalidPID(t *testing.T) {
	t.Parallel()

	KillProcessGroup(999999999)
	KillProcessGroup(0)
	KillProcessGroup(-1)
}

// ---------------------------------------------------------------------------
// TestConfigure - process group attributes
// ---------------------------------------------------------------------------

func TestConfigure(t *testing.T) {
	t.Parallel()

	cmd := exec.Command("true")
	Configure(cmd)

	if runtime.GOOS == "windows" {
		return
	}
	if cmd.SysProcAttr == nil {
		t.Fatal("Configure() left SysProcAttr nil")
	}
	assertGroupSet(t, cmd)
}
