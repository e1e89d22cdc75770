package convertcommand

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redjax/strhex/internal/config"
	"github.com/redjax/strhex/internal/constants"
	hexservice "github.com/redjax/strhex/internal/services/hexService"
)

func NewConvertCommand() *cobra.Command {
	var (
		padding     int
		noUppercase bool
		format      string
	)

	cmd := &cobra.Command{
		Use:   "convert [string]",
		Short: "Convert a string to its padded hex representation.",
		Long: `Convert a string to hex, two digits per byte, right-padded with '0'
characters to a minimum width. Padding is a floor, not a cap: output longer
than --padding is returned whole, never truncated.

Reads from stdin when no argument is given.

Examples:
  strhex convert "USDC.axl"
  strhex convert "USDC.axl" --padding 40
  strhex convert "Hello World" --padding 32 --no-uppercase
  strhex convert "USDC.axl" --format detailed
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config file / env values fill in flags the user didn't set
			defaults := config.GetConvertDefaults()
			if !cmd.Flags().Changed("padding") {
				padding = defaults.Padding
			}
			if !cmd.Flags().Changed("no-uppercase") {
				noUppercase = !defaults.Uppercase
			}
			if !cmd.Flags().Changed("format") {
				format = defaults.Format
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			outputFormat, err := hexservice.ParseFormat(format)
			if err != nil {
				return err
			}

			// Runtime failures should not dump usage text
			cmd.SilenceUsage = true

			svc := hexservice.NewHexService()
			converted, err := svc.Convert(input, padding, !noUppercase)
			if err != nil {
				return err
			}

			result := hexservice.Result{
				Input:     input,
				Hex:       converted,
				Padding:   padding,
				Uppercase: !noUppercase,
			}
			result.Render(cmd.OutOrStdout(), outputFormat)

			return nil
		},
	}

	cmd.Flags().IntVar(&padding, "padding", constants.DefaultPadding, "Minimum output length; shorter results are right-padded with '0' characters")
	cmd.Flags().BoolVar(&noUppercase, "no-uppercase", false, "Keep hex digits lowercase (default: uppercase)")
	cmd.Flags().StringVar(&format, "format", constants.DefaultFormat, "Output format: simple, detailed, or python")

	return cmd
}

// readInput returns the positional argument if present, otherwise reads
// stdin. An empty positional string is a legal conversion; empty stdin is
// not.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	inBytes, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}

	input := strings.TrimRight(string(inBytes), "\r\n")
	if input == "" {
		return "", errors.New("input is empty")
	}

	return input, nil
}
