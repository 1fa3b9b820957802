package permissions

import (
	"os"
	"runtime"
	"strings"
)

// Status enumerates coarse permission results for macOS-style prompts.
type Status string

const (
	// StatusUnknown indicates no explicit signal about permission state.
	StatusUnknown Status = "unknown"
	// StatusGranted signals that permission was previously granted.
	StatusGranted Status = "granted"
	// StatusDenied indicates the user has explicitly denied access.
	StatusDenied Status = "denied"
	// StatusPromptRequired means the platform will prompt at runtime.
	StatusPromptRequired Status = "prompt"
	// StatusUnavailable reports that the capability is not supported.
	StatusUnavailable Status = "unavailable"
)

// AccessibilityEnv overrides the accessibility probe, e.g. KEYPOST_ACCESSIBILITY=granted.
const AccessibilityEnv = "KEYPOST_ACCESSIBILITY"

// ProbeResult represents the coarse state for a permission surface.
type ProbeResult struct {
	Status   Status
	Message  string
	Guidance string
}

// LookupEnvFunc exposes environment probing for testability.
type LookupEnvFunc func(string) (string, bool)

var lookupEnv LookupEnvFunc = os.LookupEnv

// ProbeAccessibility reports whether synthetic input posting is expected to be trusted.
func ProbeAccessibility(lookup LookupEnvFunc) ProbeResult {
	if lookup == nil {
		lookup = lookupEnv
	}
	if value, ok := lookup(AccessibilityEnv); ok {
		return interpretPermissionFlag("accessibility", value)
	}
	if runtime.GOOS == "darwin" {
		return ProbeResult{Status: StatusPromptRequired, Message: "accessibility trust required to post events"}
	}
	return ProbeResult{Status: StatusUnavailable, Message: "accessibility prompts unavailable"}
}

func interpretPermissionFlag(name, value string) ProbeResult {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "granted", "allow", "allowed", "yes", "true":
		return ProbeResult{Status: StatusGranted, Message: name + " permission pre-authorised via env override"}
	case "denied", "no", "false", "blocked":
		return ProbeResult{Status: StatusDenied, Message: name + " permission denied via env override", Guidance: "use 'tccutil reset Accessibility' or update " + AccessibilityEnv + " to re-test"}
	case "prompt", "ask":
		return ProbeResult{Status: StatusPromptRequired, Message: name + " permission will prompt at runtime"}
	case "unavailable", "unsupported":
		return ProbeResult{Status: StatusUnavailable, Message: name + " permission unavailable on this platform"}
	default:
		return ProbeResult{Status: StatusUnknown, Message: name + " permission state unknown"}
	}
}

// StatusString returns the string representation used in reports.
func (p ProbeResult) StatusString() string {
	if p.Status == "" {
		return string(StatusUnknown)
	}
	return string(p.Status)
}
