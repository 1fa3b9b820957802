//go:build darwin && cgo

package inject

/*
#cgo darwin LDFLAGS: -framework CoreGraphics -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>
#include <stdint.h>

static int newHIDSource(CGEventSourceRef *out) {
        CGEventSourceRef src = CGEventSourceCreate(kCGEventSourceStateHIDSystemState);
        if (src == NULL) {
                return 0;
        }
        *out = src;
        return 1;
}

static int newKeyEvent(CGEventSourceRef src, uint16_t code, int down, CGEventRef *out) {
        CGEventRef ev = CGEventCreateKeyboardEvent(src, (CGKeyCode)code, down ? true : false);
        if (ev == NULL) {
                return 0;
        }
        *out = ev;
        return 1;
}

static int newMouseEvent(CGEventSourceRef src, CGEventType type, double x, double y, int64_t window, CGEventRef *out) {
        CGEventRef ev = CGEventCreateMouseEvent(src, type, CGPointMake(x, y), kCGMouseButtonLeft);
        if (ev == NULL) {
                return 0;
        }
        if (window > 0) {
                CGEventSetIntegerValueField(ev, kCGMouseEventWindowUnderMousePointer, window);
                CGEventSetIntegerValueField(ev, kCGMouseEventWindowUnderMousePointerThatCanHandleThisEvent, window);
        }
        *out = ev;
        return 1;
}

static void postToPid(int pid, CGEventRef ev) {
        CGEventPostToPid((pid_t)pid, ev);
}

static void releaseEvent(CGEventRef ev) {
        if (ev != NULL) {
                CFRelease(ev);
        }
}

static void releaseSource(CGEventSourceRef src) {
        if (src != NULL) {
                CFRelease(src);
        }
}

static int axTrusted(void) {
        return AXIsProcessTrusted() ? 1 : 0;
}
*/
import "C"

import (
	"sync"

	"github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"
)

const platformProvider = "quartz_post_to_pid"

type quartzSource struct {
	ref       C.CGEventSourceRef
	closeOnce sync.Once
}

func newPlatformSource() (Source, error) {
	if err := DetectEnvironment().Err(); err != nil {
		return nil, err
	}
	var ref C.CGEventSourceRef
	if C.newHIDSource(&ref) == 0 {
		return nil, errors.Wrap(ErrEventConstruction, "create HID system state source")
	}
	return &quartzSource{ref: ref}, nil
}

func accessibilityTrusted() bool {
	return C.axTrusted() != 0
}

func (s *quartzSource) Prepare(ev Event) (Prepared, error) {
	if pdebug.Enabled {
		pdebug.Printf("quartzSource.Prepare %s", ev)
	}

	var ref C.CGEventRef
	var ok C.int
	switch e := ev.(type) {
	case KeyEvent:
		down := C.int(0)
		if e.Down {
			down = 1
		}
		ok = C.newKeyEvent(s.ref, C.uint16_t(e.Code), down, &ref)
	case MouseEvent:
		var kind C.CGEventType
		switch e.Kind {
		case MouseMove:
			kind = C.kCGEventMouseMoved
		case MouseLeftDown:
			kind = C.kCGEventLeftMouseDown
		case MouseLeftUp:
			kind = C.kCGEventLeftMouseUp
		default:
			return nil, errors.Wrapf(ErrEventConstruction, "unsupported mouse kind %s", e.Kind)
		}
		ok = C.newMouseEvent(s.ref, kind, C.double(e.X), C.double(e.Y), C.int64_t(e.Window), &ref)
	default:
		return nil, errors.Wrapf(ErrEventConstruction, "unsupported event %T", ev)
	}
	if ok == 0 {
		return nil, errors.Wrapf(ErrEventConstruction, "%s", ev)
	}
	return &quartzEvent{ref: ref, ev: ev}, nil
}

func (s *quartzSource) Close() error {
	s.closeOnce.Do(func() {
		C.releaseSource(s.ref)
	})
	return nil
}

type quartzEvent struct {
	ref         C.CGEventRef
	ev          Event
	releaseOnce sync.Once
}

func (q *quartzEvent) Event() Event {
	return q.ev
}

// PostToPID never fails: CGEventPostToPid does not report delivery errors.
// pid is narrowed to pid_t (32 bits); larger values wrap and are passed through
// unchecked like any other pid.
func (q *quartzEvent) PostToPID(pid int) error {
	C.postToPid(C.int(pid), q.ref)
	return nil
}

func (q *quartzEvent) Release() {
	q.releaseOnce.Do(func() {
		C.releaseEvent(q.ref)
	})
}
