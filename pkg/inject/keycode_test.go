package inject

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKeyCode(t *testing.T) {
	cases := map[string]KeyCode{
		"0x03":    KeyF,
		"0X37":    KeyCommand,
		"55":      KeyCommand,
		"f":       KeyF,
		"Cmd":     KeyCommand,
		" space ": KeySpace,
		"enter":   KeyReturn,
		"digit0":  0x1D,
		"0":       0x00,
	}
	for input, expected := range cases {
		t.Run(input, func(t *testing.T) {
			code, err := ParseKeyCode(input)
			require.NoError(t, err)
			require.Equal(t, expected, code)
		})
	}
}

func TestParseKeyCodeRejects(t *testing.T) {
	for _, input := range []string{"", "hyper", "0x80", "128", "0xzz", "-1"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseKeyCode(input)
			require.ErrorIs(t, err, ErrUnknownKey)
		})
	}
}

func TestKeyCodeUnmarshalFlag(t *testing.T) {
	var k KeyCode
	require.NoError(t, k.UnmarshalFlag("option"))
	require.Equal(t, KeyOption, k)
	require.Error(t, k.UnmarshalFlag("nope"))
	require.Equal(t, KeyOption, k, "failed parse must not modify the value")
}

func TestKeyCodeString(t *testing.T) {
	require.Equal(t, "0x37(command)", KeyCommand.String())
	require.Equal(t, "0x34", KeyCode(0x34).String())
}

func TestKnownKeysSortedAndUnique(t *testing.T) {
	keys := KnownKeys()
	require.NotEmpty(t, keys)
	seen := make(map[KeyCode]string)
	for i, k := range keys {
		if prev, dup := seen[k.Code]; dup {
			t.Fatalf("code %s named both %q and %q", k.Code, prev, k.Name)
		}
		seen[k.Code] = k.Name
		if i > 0 {
			require.Less(t, keys[i-1].Code, k.Code)
		}
	}
}
