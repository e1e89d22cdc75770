package hexservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "uppercase", input: "555344432E61786C", want: "USDC.axl"},
		{name: "lowercase", input: "48656c6c6f20576f726c64", want: "Hello World"},
		{name: "mixed case", input: "48656C6c6F", want: "Hello"},
		{name: "empty", input: "", want: ""},
		{name: "odd length", input: "414", wantErr: true},
		{name: "invalid digit", input: "4g", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrimPadding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "even zero run", input: "555344432E61786C000000000000000000000000", want: "555344432E61786C"},
		{name: "no padding", input: "4142", want: "4142"},
		{name: "keeps low nibble of real byte", input: "4140", want: "4140"},
		{name: "odd pad count", input: "41000", want: "41"},
		{name: "regrows to even after trimming real zero nibble", input: "45400", want: "4540"},
		{name: "all zeros", input: "0000", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimPadding(tt.input))
		})
	}
}

func TestServiceDecodeRoundTrip(t *testing.T) {
	svc := NewHexService()

	converted, err := svc.Convert("USDC.axl", 40, true)
	require.NoError(t, err)

	decoded, err := svc.Decode(converted, true)
	require.NoError(t, err)
	assert.Equal(t, "USDC.axl", decoded)
}
