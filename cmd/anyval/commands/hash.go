package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var hashCmd = &cobra.Command{
	Use:   "hash LITERAL...",
	Short: "Print the digest of each scalar literal",
	Long: `Hash parses the literals and prints the 64-bit digest of each value,
one per line. Digests are seeded per process: equal values agree within a
run, but digests are not stable across runs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vals, err := parseArgs(args)
		if err != nil {
			return err
		}
		base := viper.GetString("hash.base")
		for _, v := range vals {
			if base == "dec" {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\n", v.Hash())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%016x\n", v.Hash())
			}
		}
		return nil
	},
}

func init() {
	hashCmd.Flags().String("base", "hex", "Digest base: hex or dec")
	viper.SetDefault("hash.base", "hex")
	_ = viper.BindPFlag("hash.base", hashCmd.Flags().Lookup("base"))
}
