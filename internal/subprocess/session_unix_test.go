//go:build unix

package subprocess

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestReap_LeavesNoZombie(t *testing.T) {
	cmd := exec.Command("sleep", "30")
	require.NoError(t, cmd.Start())

	pid := cmd.Process.Pid

	reap(cmd.Process)

	// kill(pid, 0) succeeds on a zombie; ESRCH means the entry is gone.
	require.ErrorIs(t, unix.Kill(pid, 0), unix.ESRCH)

	_, err := cmd.Process.Wait()
	require.Error(t, err, "second wait must fail once the child is reaped")
}

func TestReap_AlreadyExited(t *testing.T) {
	cmd := exec.Command("true")
	require.NoError(t, cmd.Start())

	require.NotPanics(t, func() { reap(cmd.Process) })
	require.ErrorIs(t, unix.Kill(cmd.Process.Pid, 0), unix.ESRCH)
}
