//go:build !windows

package waker

import (
	"os/exec"
	"syscall"
)

// detach starts cmd in its own process group so that kill also reaches the
// processes it spawns, such as the sleep under systemd-inhibit.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func kill(cmd *exec.Cmd) {
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
		_ = cmd.Process.Kill()
	}
}
