package inject

import (
	"sync"

	"github.com/pkg/errors"
)

// Delivery records a single post made through a Recorder.
type Delivery struct {
	PID   int
	Event Event
}

// Recorder is an in-memory Source that records posts instead of performing
// them. It backs dry runs and tests on every platform.
type Recorder struct {
	// FailPrepare, when set, decides whether constructing ev fails.
	FailPrepare func(ev Event) error
	// FailPost, when set, decides whether posting ev to pid fails.
	FailPost func(pid int, ev Event) error

	mu         sync.Mutex
	deliveries []Delivery
	released   int
	closed     bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Prepare(ev Event) (Prepared, error) {
	if ev == nil {
		return nil, errors.Wrap(ErrEventConstruction, "nil event")
	}
	if r.FailPrepare != nil {
		if err := r.FailPrepare(ev); err != nil {
			return nil, errors.Wrapf(ErrEventConstruction, "%s: %v", ev, err)
		}
	}
	return &recordedEvent{recorder: r, ev: ev}, nil
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

// Deliveries returns a copy of every recorded post in order.
func (r *Recorder) Deliveries() []Delivery {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Delivery(nil), r.deliveries...)
}

// Closed reports whether Close has been called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Released reports how many prepared events have been released.
func (r *Recorder) Released() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.released
}

type recordedEvent struct {
	recorder *Recorder
	ev       Event
	once     sync.Once
}

func (e *recordedEvent) Event() Event {
	return e.ev
}

func (e *recordedEvent) PostToPID(pid int) error {
	if e.recorder.FailPost != nil {
		if err := e.recorder.FailPost(pid, e.ev); err != nil {
			return err
		}
	}
	e.recorder.mu.Lock()
	e.recorder.deliveries = append(e.recorder.deliveries, Delivery{PID: pid, Event: e.ev})
	e.recorder.mu.Unlock()
	return nil
}

func (e *recordedEvent) Release() {
	e.once.Do(func() {
		e.recorder.mu.Lock()
		e.recorder.released++
		e.recorder.mu.Unlock()
	})
}
