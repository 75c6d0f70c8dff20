package commands

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"martianoff/anyval/value"
)

var sortCmd = &cobra.Command{
	Use:   "sort LITERAL...",
	Short: "Sort scalar literals under the global value order",
	Long: `Sort parses the literals and orders them: empty values first, then
grouped by type (type order is content-independent), then by each type's own
less-than within a group.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vals, err := parseArgs(args)
		if err != nil {
			return err
		}
		slices.SortStableFunc(vals, value.Compare)

		out := cmd.OutOrStdout()
		if viper.GetString("format") == "json" {
			texts := make([]string, len(vals))
			for i, v := range vals {
				texts[i] = v.String()
			}
			enc := json.NewEncoder(out)
			return enc.Encode(texts)
		}
		for _, v := range vals {
			fmt.Fprintln(out, v.String())
		}
		return nil
	},
}
