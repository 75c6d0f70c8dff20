package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errUnequal marks the unequal outcome so Execute can map it to its exit
// code; it is a result signal, not a failure to report.
var errUnequal = errors.New("values are unequal")

var eqCmd = &cobra.Command{
	Use:   "eq A B",
	Short: "Test two scalar literals for equality",
	Long: `Eq parses two literals and compares the resulting values.

Values of different types are always unequal; there is no numeric coercion,
so 'anyval eq 1 1.0' reports unequal. Exit status is 0 when equal, 1 when
unequal, 2 on malformed input.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vals, err := parseArgs(args)
		if err != nil {
			return err
		}
		if vals[0].Equal(vals[1]) {
			fmt.Fprintln(cmd.OutOrStdout(), "equal")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "unequal")
		return errUnequal
	},
}
