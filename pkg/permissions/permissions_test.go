package permissions

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeLookup map[string]string

func (f fakeLookup) get(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

func TestInterpretPermissionFlag(t *testing.T) {
	cases := map[string]struct {
		value    string
		expected Status
	}{
		"granted":     {"granted", StatusGranted},
		"allow":       {" Allow ", StatusGranted},
		"denied":      {"denied", StatusDenied},
		"prompt":      {"prompt", StatusPromptRequired},
		"unsupported": {"unsupported", StatusUnavailable},
		"unknown":     {"", StatusUnknown},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			res := interpretPermissionFlag("test", tc.value)
			require.Equal(t, tc.expected, res.Status)
		})
	}
}

func TestProbeAccessibilityHonoursEnv(t *testing.T) {
	res := ProbeAccessibility(fakeLookup{AccessibilityEnv: "denied"}.get)
	require.Equal(t, StatusDenied, res.Status)
	require.NotEmpty(t, res.Guidance, "expected guidance when denied")
}

func TestProbeAccessibilityDefaults(t *testing.T) {
	res := ProbeAccessibility(fakeLookup{}.get)
	require.NotEqual(t, StatusUnknown, res.Status, "expected platform specific default")
}

func TestStatusStringDefaultsToUnknown(t *testing.T) {
	require.Equal(t, "unknown", ProbeResult{}.StatusString())
	require.Equal(t, "granted", ProbeResult{Status: StatusGranted}.StatusString())
}

func TestProbeProcessRejectsNonPositivePID(t *testing.T) {
	for _, pid := range []int{0, -1} {
		res := ProbeProcess(pid)
		require.Equal(t, ProcessInvalid, res.State)
	}
}

func TestProbeProcessFindsSelf(t *testing.T) {
	res := ProbeProcess(os.Getpid())
	if res.State == ProcessUnknown {
		t.Skip("process probing unsupported on this platform")
	}
	require.Equal(t, ProcessRunning, res.State)
	require.Contains(t, res.String(), "running")
}

func TestPIDBeyondPidTIsInvalid(t *testing.T) {
	res := ProbeProcess(int(int64(1) << 32))
	require.Equal(t, ProcessInvalid, res.State)
	require.Contains(t, res.Message, "pid_t")
}
