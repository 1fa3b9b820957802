package inject

import "github.com/pkg/errors"

// Step is one entry of an explicit key sequence.
type Step struct {
	Key  string `yaml:"key"`
	Down bool   `yaml:"down"`
}

// Chord presses keys in order and releases them in reverse order.
func Chord(codes ...KeyCode) []Event {
	out := make([]Event, 0, 2*len(codes))
	for _, code := range codes {
		out = append(out, KeyEvent{Code: code, Down: true})
	}
	for i := len(codes) - 1; i >= 0; i-- {
		out = append(out, KeyEvent{Code: codes[i], Down: false})
	}
	return out
}

// Tap presses and releases a single key.
func Tap(code KeyCode) []Event {
	return Chord(code)
}

// ParseChord resolves key names or codes and expands them with Chord.
func ParseChord(keys []string) ([]Event, error) {
	codes := make([]KeyCode, 0, len(keys))
	for i, key := range keys {
		code, err := ParseKeyCode(key)
		if err != nil {
			return nil, errors.Wrapf(err, "chord key %d", i)
		}
		codes = append(codes, code)
	}
	return Chord(codes...), nil
}

// ParseSequence resolves an explicit sequence, preserving its order.
func ParseSequence(steps []Step) ([]Event, error) {
	out := make([]Event, 0, len(steps))
	for i, step := range steps {
		code, err := ParseKeyCode(step.Key)
		if err != nil {
			return nil, errors.Wrapf(err, "sequence step %d", i)
		}
		out = append(out, KeyEvent{Code: code, Down: step.Down})
	}
	return out, nil
}

// Click moves to (x, y) then presses and releases the left button.
func Click(x, y float64, window int) []Event {
	return []Event{
		MouseEvent{Kind: MouseMove, X: x, Y: y, Window: window},
		MouseEvent{Kind: MouseLeftDown, X: x, Y: y, Window: window},
		MouseEvent{Kind: MouseLeftUp, X: x, Y: y, Window: window},
	}
}
