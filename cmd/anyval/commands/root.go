// Package commands provides the CLI commands for the anyval tool.
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"martianoff/anyval/internal/literal"
	"martianoff/anyval/value"
)

// Exit codes. Unequal is distinct from a usage error so scripts can branch
// on the comparison result alone.
const (
	exitSuccess   = 0
	exitUnequal   = 1
	exitUserError = 2
)

var rootCmd = &cobra.Command{
	Use:   "anyval",
	Short: "Inspect and compare type-erased scalar values",
	Long: `anyval parses scalar literals into type-erased values and exposes
the value operations on them.

Literals:
  none                 the empty value
  true, false          bool
  42, -7, 0x1f, 0b101  integer
  3.14, 1e-9           float
  'x'                  rune
  "quoted", bare-text  string

Examples:
  anyval eq 42 '"42"'           Equality of an int and a string (unequal)
  anyval sort 3 none foo 1.5    Sort under the global value order
  anyval hash foo 42            Print value digests
  anyval inspect 42 none        Show type, rendering, emptiness, digest
  anyval version                Print version`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUnequal) {
			os.Exit(exitUnequal)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitUserError)
	}
}

var verbose bool

func init() {
	rootCmd.AddCommand(eqCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose diagnostics on stderr")
	rootCmd.PersistentFlags().String("format", "text", "Output format: text or json")

	cobra.OnInitialize(initConfig)
}

// initConfig wires flags and ANYVAL_* environment variables through viper,
// flags taking precedence.
func initConfig() {
	viper.SetEnvPrefix("ANYVAL")
	viper.AutomaticEnv()
	viper.SetDefault("format", "text")
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
}

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// parseArgs converts CLI literals, tracing each parsed value when verbose.
func parseArgs(args []string) ([]value.Value, error) {
	vals, err := literal.ParseAll(args)
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		log.Debug().
			Int("arg", i).
			Str("type", v.TypeName()).
			Str("text", v.String()).
			Msg("parsed literal")
	}
	return vals, nil
}
