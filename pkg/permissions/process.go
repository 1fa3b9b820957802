package permissions

import (
	"math"
	"strconv"
)

// ProcessState describes whether a pid can receive posted events.
type ProcessState string

const (
	ProcessRunning   ProcessState = "running"
	ProcessNotFound  ProcessState = "not_found"
	ProcessForbidden ProcessState = "forbidden"
	ProcessInvalid   ProcessState = "invalid"
	ProcessUnknown   ProcessState = "unknown"
)

// ProcessProbe is the liveness result for a single pid.
type ProcessProbe struct {
	PID     int
	State   ProcessState
	Message string
}

// ProbeProcess checks that pid names a live process without signalling it.
func ProbeProcess(pid int) ProcessProbe {
	if pid <= 0 {
		return ProcessProbe{PID: pid, State: ProcessInvalid, Message: "pid must be positive"}
	}
	if pid > math.MaxInt32 {
		return ProcessProbe{PID: pid, State: ProcessInvalid, Message: "pid exceeds pid_t range"}
	}
	return probeProcess(pid)
}

func (p ProcessProbe) String() string {
	s := strconv.Itoa(p.PID) + ": " + string(p.State)
	if p.Message != "" {
		s += " (" + p.Message + ")"
	}
	return s
}
