//go:build !darwin || !cgo

package inject

const platformProvider = "unsupported"

func newPlatformSource() (Source, error) {
	return nil, ErrUnsupportedPlatform
}

func accessibilityTrusted() bool {
	return false
}
