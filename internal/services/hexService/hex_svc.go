package hexservice

// HexService provides string-to-hex conversion operations.
type HexService struct{}

// NewHexService creates and returns a new HexService instance.
func NewHexService() *HexService {
	return &HexService{}
}

// Convert encodes the input string to hex, applies the requested case,
// and right-pads with '0' characters to the padding width.
func (s *HexService) Convert(input string, padding int, uppercase bool) (string, error) {
	return ConvertString(input, padding, uppercase)
}

// Decode converts a hex string back to the text it encodes. When trim is
// true, trailing '0' pad characters are stripped first.
func (s *HexService) Decode(input string, trim bool) (string, error) {
	if trim {
		input = TrimPadding(input)
	}

	return DecodeString(input)
}
