//go:build unix

package permissions

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestProbeProcessMapsErrno(t *testing.T) {
	orig := kill
	defer func() { kill = orig }()

	cases := map[string]struct {
		err      error
		expected ProcessState
	}{
		"running":   {nil, ProcessRunning},
		"missing":   {unix.ESRCH, ProcessNotFound},
		"forbidden": {unix.EPERM, ProcessForbidden},
		"other":     {unix.EINVAL, ProcessUnknown},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			kill = func(pid int, sig unix.Signal) error {
				require.Equal(t, 549, pid)
				require.Equal(t, unix.Signal(0), sig)
				return tc.err
			}
			require.Equal(t, tc.expected, ProbeProcess(549).State)
		})
	}
}
