//go:build linux

package sre

import (
	"os/exec"
	"syscall"
)

// setPdeathsig asks the kernel to SIGTERM the child if this process dies
// first, the same guard srek's C ancestor installs with
// prctl(PR_SET_PDEATHSIG) before execl in cmd_extcmd_io.
func setPdeathsig(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{Pdeathsig: syscall.SIGTERM}
}
