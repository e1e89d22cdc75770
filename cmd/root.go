// The root command for the CLI.
// This root 'composes' your subcommands and provides global config flags like --debug.
package cmd

import (
	convertCmd "github.com/redjax/strhex/internal/commands/convertCommand"
	decodeCmd "github.com/redjax/strhex/internal/commands/decodeCommand"
	selfCmd "github.com/redjax/strhex/internal/commands/selfCommand"
	"github.com/redjax/strhex/internal/config"

	"github.com/spf13/cobra"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// For enabling debug logging with --debug/-D
	debug bool
)

// Cobra root command
var rootCmd = &cobra.Command{
	// The command you run to call the compiled binary
	Use: "strhex",
	// A short description of what the command does
	Short: "Convert strings to padded hex, and back.",
	// A longer description for the command
	Long: `Convert strings to their hex byte representation, optionally uppercased
and right-padded with '0' characters to a fixed minimum width.`,
	// Adds a help menu you can display with --help/-h
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute the root Cobra command
func Execute() {
	// Import this into a main.go and call with cmd.Execute()
	cobra.CheckErr(rootCmd.Execute())
}

// Initialize the root command
func init() {
	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON, YAML, TOML, or dotenv)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Add other CLI subcommands
	rootCmd.AddCommand(convertCmd.NewConvertCommand())
	rootCmd.AddCommand(decodeCmd.NewDecodeCommand())
	rootCmd.AddCommand(selfCmd.NewSelfCommand())

	// Call the initConfig function when the root command is initialized
	cobra.OnInitialize(initConfig)
}

// Load configuration for CLI app
func initConfig() {
	config.LoadConfig(rootCmd.PersistentFlags(), cfgFile)
}
