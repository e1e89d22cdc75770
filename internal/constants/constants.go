package constants

// Prefix for environment variables read into the CLI's config, e.g.
// STRHEX_PADDING maps to the 'padding' config key.
const EnvPrefix = "STRHEX_"

const (
	// Minimum output length conversions are padded to by default.
	DefaultPadding = 40
	// Character appended to reach the padding width.
	PadChar = "0"
	// Output rendering mode used when --format is not given.
	DefaultFormat = "simple"
)
