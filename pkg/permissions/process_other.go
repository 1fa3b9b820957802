//go:build !unix

package permissions

func probeProcess(pid int) ProcessProbe {
	return ProcessProbe{PID: pid, State: ProcessUnknown, Message: "process probing unsupported on this platform"}
}
