//go:build unix

package permissions

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

var kill = unix.Kill

func probeProcess(pid int) ProcessProbe {
	err := kill(pid, 0)
	switch {
	case err == nil:
		return ProcessProbe{PID: pid, State: ProcessRunning}
	case errors.Is(err, unix.ESRCH):
		return ProcessProbe{PID: pid, State: ProcessNotFound, Message: "no such process"}
	case errors.Is(err, unix.EPERM):
		return ProcessProbe{PID: pid, State: ProcessForbidden, Message: "process exists but is owned by another user"}
	default:
		return ProcessProbe{PID: pid, State: ProcessUnknown, Message: err.Error()}
	}
}
