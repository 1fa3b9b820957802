package inject

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// KeyCode is a macOS virtual key code (kVK_*), independent of keyboard layout.
type KeyCode uint16

// MaxKeyCode is the largest virtual key code accepted by ParseKeyCode.
const MaxKeyCode KeyCode = 0x7F

// Frequently used virtual key codes.
const (
	KeyF       KeyCode = 0x03
	KeyReturn  KeyCode = 0x24
	KeyTab     KeyCode = 0x30
	KeySpace   KeyCode = 0x31
	KeyEscape  KeyCode = 0x35
	KeyCommand KeyCode = 0x37
	KeyShift   KeyCode = 0x38
	KeyOption  KeyCode = 0x3A
	KeyControl KeyCode = 0x3B
)

// keyNames maps canonical names to ANSI-layout virtual key codes.
var keyNames = map[string]KeyCode{
	"a": 0x00, "s": 0x01, "d": 0x02, "f": 0x03, "h": 0x04, "g": 0x05,
	"z": 0x06, "x": 0x07, "c": 0x08, "v": 0x09, "b": 0x0B, "q": 0x0C,
	"w": 0x0D, "e": 0x0E, "r": 0x0F, "y": 0x10, "t": 0x11,
	"digit1": 0x12, "digit2": 0x13, "digit3": 0x14, "digit4": 0x15,
	"digit6": 0x16, "digit5": 0x17, "equal": 0x18, "digit9": 0x19,
	"digit7": 0x1A, "minus": 0x1B, "digit8": 0x1C, "digit0": 0x1D,
	"rightbracket": 0x1E, "o": 0x1F, "u": 0x20, "leftbracket": 0x21,
	"i": 0x22, "p": 0x23, "return": 0x24, "l": 0x25, "j": 0x26,
	"quote": 0x27, "k": 0x28, "semicolon": 0x29, "backslash": 0x2A,
	"comma": 0x2B, "slash": 0x2C, "n": 0x2D, "m": 0x2E, "period": 0x2F,
	"tab": 0x30, "space": 0x31, "grave": 0x32, "delete": 0x33,
	"escape": 0x35, "command": 0x37, "shift": 0x38, "capslock": 0x39,
	"option": 0x3A, "control": 0x3B, "rightshift": 0x3C,
	"rightoption": 0x3D, "rightcontrol": 0x3E, "function": 0x3F,
	"f17": 0x40, "volumeup": 0x48, "volumedown": 0x49, "mute": 0x4A,
	"f18": 0x4F, "f19": 0x50, "f20": 0x5A,
	"f5": 0x60, "f6": 0x61, "f7": 0x62, "f3": 0x63, "f8": 0x64,
	"f9": 0x65, "f11": 0x67, "f13": 0x69, "f16": 0x6A, "f14": 0x6B,
	"f10": 0x6D, "f12": 0x6F, "f15": 0x71, "help": 0x72, "home": 0x73,
	"pageup": 0x74, "forwarddelete": 0x75, "f4": 0x76, "end": 0x77,
	"f2": 0x78, "pagedown": 0x79, "f1": 0x7A, "left": 0x7B,
	"right": 0x7C, "down": 0x7D, "up": 0x7E,
}

var keyAliases = map[string]string{
	"cmd":       "command",
	"meta":      "command",
	"super":     "command",
	"alt":       "option",
	"opt":       "option",
	"ctrl":      "control",
	"fn":        "function",
	"enter":     "return",
	"esc":       "escape",
	"backspace": "delete",
	"del":       "forwarddelete",
	"caps":      "capslock",
}

var keyCodeNames = func() map[KeyCode]string {
	out := make(map[KeyCode]string, len(keyNames))
	for name, code := range keyNames {
		out[code] = name
	}
	return out
}()

// ParseKeyCode resolves a hex ("0x37"), decimal ("55") or named ("cmd") key.
func ParseKeyCode(value string) (KeyCode, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return 0, errors.Wrap(ErrUnknownKey, "empty key")
	}

	var (
		n   uint64
		err error
	)
	switch {
	case strings.HasPrefix(normalized, "0x"):
		n, err = strconv.ParseUint(normalized[2:], 16, 16)
	case isDecimal(normalized):
		n, err = strconv.ParseUint(normalized, 10, 16)
	default:
		if alias, ok := keyAliases[normalized]; ok {
			normalized = alias
		}
		code, ok := keyNames[normalized]
		if !ok {
			return 0, errors.Wrapf(ErrUnknownKey, "%q", value)
		}
		return code, nil
	}
	if err != nil {
		return 0, errors.Wrapf(ErrUnknownKey, "%q", value)
	}
	if KeyCode(n) > MaxKeyCode {
		return 0, errors.Wrapf(ErrUnknownKey, "%q exceeds 0x%02x", value, uint16(MaxKeyCode))
	}
	return KeyCode(n), nil
}

func isDecimal(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// UnmarshalFlag implements go-flags Unmarshaler so keys can be given by name or code.
func (k *KeyCode) UnmarshalFlag(value string) error {
	code, err := ParseKeyCode(value)
	if err != nil {
		return err
	}
	*k = code
	return nil
}

// Name returns the canonical key name, or "" when the code has none.
func (k KeyCode) Name() string {
	return keyCodeNames[k]
}

func (k KeyCode) String() string {
	if name := k.Name(); name != "" {
		return fmt.Sprintf("0x%02x(%s)", uint16(k), name)
	}
	return fmt.Sprintf("0x%02x", uint16(k))
}

// NamedKey pairs a canonical key name with its code.
type NamedKey struct {
	Name string
	Code KeyCode
}

// KnownKeys lists the key table ordered by code.
func KnownKeys() []NamedKey {
	out := make([]NamedKey, 0, len(keyNames))
	for name, code := range keyNames {
		out = append(out, NamedKey{Name: name, Code: code})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Code == out[j].Code {
			return out[i].Name < out[j].Name
		}
		return out[i].Code < out[j].Code
	})
	return out
}
