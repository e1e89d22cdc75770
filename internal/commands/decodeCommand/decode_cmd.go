package decodecommand

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	hexservice "github.com/redjax/strhex/internal/services/hexService"
)

func NewDecodeCommand() *cobra.Command {
	var trim bool

	cmd := &cobra.Command{
		Use:   "decode [hex string]",
		Short: "Decode a hex string back to text.",
		Long: `Decode a hex string (case-insensitive) back to the text it encodes.

Use --trim to strip trailing '0' padding first, e.g. to reverse the output
of 'strhex convert'. Data that genuinely ends in zero bytes cannot be told
apart from padding and will be trimmed too.

Examples:
  strhex decode 48656c6c6f
  strhex decode "555344432E61786C000000000000000000000000" --trim
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string

			if len(args) > 0 {
				input = args[0]
			} else {
				inBytes, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read from stdin: %w", err)
				}
				input = strings.TrimSpace(string(inBytes))
			}

			if input == "" {
				return errors.New("input is empty")
			}

			cmd.SilenceUsage = true

			svc := hexservice.NewHexService()
			decoded, err := svc.Decode(input, trim)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), decoded)
			return nil
		},
	}

	cmd.Flags().BoolVar(&trim, "trim", false, "Strip trailing '0' padding before decoding")

	return cmd
}
