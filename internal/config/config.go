package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/redjax/strhex/internal/constants"
)

var K = koanf.New(".")

// ConvertDefaults are the configurable defaults for the convert command.
// Explicit flags always win over file/env values.
type ConvertDefaults struct {
	Padding   int    `koanf:"padding"`
	Uppercase bool   `koanf:"uppercase"`
	Format    string `koanf:"format"`
}

func LoadConfig(flagSet *pflag.FlagSet, configFile string) {
	// Load from config file if provided
	if configFile != "" {
		parser, err := parserForFile(configFile)
		if err != nil {
			log.Fatalf("unsupported config file format: %v", err)
		}
		if err := K.Load(file.Provider(configFile), parser); err != nil {
			log.Printf("error loading config file: %v", err)
		}
	}

	// Load from environment variables (prefix "STRHEX_")
	// This will convert STRHEX_FOO_BAR to foo.bar
	K.Load(env.Provider(constants.EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, constants.EnvPrefix)), "_", ".", -1)
	}), nil)

	// Load from command-line flags (highest precedence)
	K.Load(posflag.Provider(flagSet, ".", K), nil)
}

// GetConvertDefaults returns the loaded defaults, falling back to the
// built-in values for anything the config never set.
func GetConvertDefaults() ConvertDefaults {
	defaults := ConvertDefaults{
		Padding:   constants.DefaultPadding,
		Uppercase: true,
		Format:    constants.DefaultFormat,
	}

	if K.Exists("padding") {
		defaults.Padding = K.Int("padding")
	}
	if K.Exists("uppercase") {
		defaults.Uppercase = K.Bool("uppercase")
	}
	if K.Exists("format") {
		defaults.Format = K.String("format")
	}

	return defaults
}

func parserForFile(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
