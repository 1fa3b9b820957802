package inject

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/offlinefirst/keypost/pkg/permissions"
)

// Environment summarises native event posting support.
type Environment struct {
	Provider   string
	Available  bool
	Trusted    bool
	Permission string
	Message    string
	Guidance   string
}

const providerRecorder = "recorder"

// DetectEnvironment reports whether a native source can post events here.
func DetectEnvironment() Environment {
	return detectEnvironment(permissions.ProbeAccessibility(nil), accessibilityTrusted())
}

func detectEnvironment(accessibility permissions.ProbeResult, trusted bool) Environment {
	env := Environment{
		Provider:   platformProvider,
		Trusted:    trusted,
		Permission: accessibility.StatusString(),
		Message:    accessibility.Message,
		Guidance:   accessibility.Guidance,
	}

	if platformProvider == "unsupported" {
		env.Provider = providerRecorder
		env.Permission = "not_applicable"
		env.Message = "native posting unavailable on " + runtime.GOOS + "; only --dry-run works"
		return env
	}

	env.Available = accessibility.Status != permissions.StatusDenied
	if trusted {
		env.Permission = string(permissions.StatusGranted)
		env.Message = "process is trusted for accessibility"
		env.Guidance = ""
	} else if env.Available && env.Guidance == "" {
		env.Guidance = "grant Accessibility access in System Settings > Privacy & Security"
	}
	if !env.Available && env.Message == "" {
		env.Message = "accessibility permission missing"
	}
	return env
}

// Err reports why a native source cannot post events here, or nil.
func (e Environment) Err() error {
	switch {
	case e.Provider == providerRecorder:
		return ErrUnsupportedPlatform
	case !e.Available:
		return errors.Wrap(ErrAccessibilityPermission, e.Message)
	default:
		return nil
	}
}
