package inject

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/offlinefirst/keypost/pkg/permissions"
)

func TestDetectEnvironmentSetsFields(t *testing.T) {
	env := DetectEnvironment()
	require.NotEmpty(t, env.Provider)
	require.NotEmpty(t, env.Permission)
	require.NotEmpty(t, env.Message)
}

func TestDetectEnvironmentDenied(t *testing.T) {
	env := detectEnvironment(permissions.ProbeResult{Status: permissions.StatusDenied}, false)
	require.False(t, env.Available)
	require.NotEmpty(t, env.Message)
}

func TestDetectEnvironmentTrusted(t *testing.T) {
	env := detectEnvironment(permissions.ProbeResult{Status: permissions.StatusPromptRequired}, true)
	if platformProvider == "unsupported" {
		require.Equal(t, providerRecorder, env.Provider)
		require.False(t, env.Available)
		return
	}
	require.True(t, env.Available)
	require.Equal(t, string(permissions.StatusGranted), env.Permission)
}

func TestEnvironmentErr(t *testing.T) {
	denied := detectEnvironment(permissions.ProbeResult{Status: permissions.StatusDenied, Message: "denied via env override"}, false)
	granted := detectEnvironment(permissions.ProbeResult{Status: permissions.StatusGranted}, true)
	if platformProvider == "unsupported" {
		require.ErrorIs(t, denied.Err(), ErrUnsupportedPlatform)
		require.ErrorIs(t, granted.Err(), ErrUnsupportedPlatform)
		return
	}
	require.ErrorIs(t, denied.Err(), ErrAccessibilityPermission)
	require.Contains(t, denied.Err().Error(), "denied via env override")
	require.NoError(t, granted.Err())
}

func TestEnvironmentErrWithoutPlatformCheck(t *testing.T) {
	require.ErrorIs(t, Environment{Provider: providerRecorder}.Err(), ErrUnsupportedPlatform)
	require.ErrorIs(t, Environment{Provider: "quartz_post_to_pid", Message: "accessibility permission missing"}.Err(), ErrAccessibilityPermission)
	require.NoError(t, Environment{Provider: "quartz_post_to_pid", Available: true}.Err())
}
