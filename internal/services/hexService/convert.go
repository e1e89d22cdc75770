package hexservice

import (
	"encoding/hex"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/redjax/strhex/internal/constants"
)

// ErrInvalidEncoding is returned when the input string is not valid UTF-8.
var ErrInvalidEncoding = errors.New("input is not valid UTF-8")

// ConvertString encodes input's UTF-8 bytes as hex, two digits per byte in
// byte order, uppercased when requested, then right-padded with '0'
// characters until the result is at least padding characters long.
//
// Padding is a floor, not a cap: results longer than padding are returned
// as-is, never truncated. A padding of zero or below is a no-op.
func ConvertString(input string, padding int, uppercase bool) (string, error) {
	if !utf8.ValidString(input) {
		return "", ErrInvalidEncoding
	}

	hexString := hex.EncodeToString([]byte(input))

	if uppercase {
		hexString = strings.ToUpper(hexString)
	}

	if padCount := padding - len(hexString); padCount > 0 {
		hexString += strings.Repeat(constants.PadChar, padCount)
	}

	return hexString, nil
}
