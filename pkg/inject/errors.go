package inject

import "github.com/pkg/errors"

var (
	// ErrUnsupportedPlatform is returned by NewSource where no native backend exists.
	ErrUnsupportedPlatform = errors.New("synthetic event posting is only supported on macOS")

	// ErrAccessibilityPermission indicates the host must grant Accessibility trust.
	ErrAccessibilityPermission = errors.New("macOS accessibility permission required for event posting")

	// ErrEventConstruction reports that the event source could not produce an event.
	ErrEventConstruction = errors.New("event source failed to construct event")

	// ErrUnknownKey reports a key name or code outside the virtual key table.
	ErrUnknownKey = errors.New("unknown virtual key")
)
