package inject

// Source constructs platform events. A Source is created once and shared by
// every event it prepares.
type Source interface {
	Prepare(ev Event) (Prepared, error)
	Close() error
}

// Prepared is a constructed platform event that can be posted to any pid.
type Prepared interface {
	Event() Event
	PostToPID(pid int) error
	Release()
}

// NewSource opens the native event source for this platform.
func NewSource() (Source, error) {
	return newPlatformSource()
}
