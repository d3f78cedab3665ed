//go:build !linux

package sre

import "os/exec"

// setPdeathsig is a no-op outside Linux: Pdeathsig has no equivalent on
// other platforms, the same "#if __linux__" guard the C ancestor uses
// around prctl(PR_SET_PDEATHSIG).
func setPdeathsig(c *exec.Cmd) {}
