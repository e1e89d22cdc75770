package hexservice

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/redjax/strhex/internal/constants"
)

// DecodeString converts a hex string (case-insensitive, even length) back to
// the text it encodes.
func DecodeString(input string) (string, error) {
	decoded, err := hex.DecodeString(strings.ToLower(input))
	if err != nil {
		return "", fmt.Errorf("failed to decode hex: %w", err)
	}

	return string(decoded), nil
}

// TrimPadding strips trailing '0' characters from a hex string, keeping the
// result at an even length so it stays decodable. Data that genuinely ends
// in zero bytes is indistinguishable from padding and will be trimmed too.
func TrimPadding(input string) string {
	trimmed := strings.TrimRight(input, constants.PadChar)

	// Re-grow to even length; a lone trimmed '0' was the low nibble of a real byte
	if len(trimmed)%2 != 0 {
		trimmed = input[:len(trimmed)+1]
	}

	return trimmed
}
