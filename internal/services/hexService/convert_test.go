package hexservice

import (
	"encoding/hex"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		padding   int
		uppercase bool
		want      string
	}{
		{
			name:      "token denom padded to 40",
			input:     "USDC.axl",
			padding:   40,
			uppercase: true,
			want:      "555344432E61786C000000000000000000000000",
		},
		{
			name:      "lowercase padded to 32",
			input:     "Hello World",
			padding:   32,
			uppercase: false,
			want:      "48656c6c6f20576f726c640000000000",
		},
		{
			name:      "empty input zero padding",
			input:     "",
			padding:   0,
			uppercase: true,
			want:      "",
		},
		{
			name:      "padding floor already exceeded",
			input:     "A",
			padding:   0,
			uppercase: true,
			want:      "41",
		},
		{
			name:      "negative padding is a no-op",
			input:     "A",
			padding:   -10,
			uppercase: true,
			want:      "41",
		},
		{
			name:      "empty input padded",
			input:     "",
			padding:   8,
			uppercase: true,
			want:      "00000000",
		},
		{
			name:      "padding below natural length never truncates",
			input:     "Hello World",
			padding:   4,
			uppercase: false,
			want:      "48656c6c6f20576f726c64",
		},
		{
			name:      "multibyte input",
			input:     "héllo",
			padding:   16,
			uppercase: true,
			want:      "68C3A96C6C6F0000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertString(tt.input, tt.padding, tt.uppercase)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertStringInvalidUTF8(t *testing.T) {
	bad := string([]byte{0xff, 0xfe})
	require.False(t, utf8.ValidString(bad))

	_, err := ConvertString(bad, 40, true)
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestConvertStringLength(t *testing.T) {
	inputs := []string{"", "A", "USDC.axl", "Hello World", "a longer input string to exceed the floor"}
	paddings := []int{0, 1, 16, 40, 64}

	for _, input := range inputs {
		for _, padding := range paddings {
			got, err := ConvertString(input, padding, true)
			require.NoError(t, err)

			want := 2 * len(input)
			if padding > want {
				want = padding
			}
			assert.Len(t, got, want, "input=%q padding=%d", input, padding)
		}
	}
}

func TestConvertStringCase(t *testing.T) {
	upper, err := ConvertString("USDC.axl", 40, true)
	require.NoError(t, err)
	lower, err := ConvertString("USDC.axl", 40, false)
	require.NoError(t, err)

	// Upper and lower renditions differ only by digit case
	assert.Equal(t, upper, strings.ToUpper(lower))

	// Uppercase output carries no lowercase hex digits
	assert.NotRegexp(t, "[a-f]", upper)
}

func TestConvertStringRoundTrip(t *testing.T) {
	for _, input := range []string{"USDC.axl", "Hello World", "héllo", "x"} {
		got, err := ConvertString(input, 40, true)
		require.NoError(t, err)

		// First 2*len(bytes) chars are the exact encoding of the input
		decoded, err := hex.DecodeString(strings.ToLower(got[:2*len(input)]))
		require.NoError(t, err)
		assert.Equal(t, input, string(decoded))

		// Everything past that is pad characters only
		assert.Equal(t, strings.Repeat("0", len(got)-2*len(input)), got[2*len(input):])
	}
}
