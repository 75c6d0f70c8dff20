package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"martianoff/anyval/value"
)

// report is the inspect output for one value.
type report struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Empty bool   `json:"empty"`
	Hash  uint64 `json:"hash"`
}

func reportOf(v value.Value) report {
	return report{
		Type:  v.TypeName(),
		Text:  v.String(),
		Empty: v.Empty(),
		Hash:  v.Hash(),
	}
}

var inspectCmd = &cobra.Command{
	Use:   "inspect LITERAL...",
	Short: "Show type, rendering, emptiness and digest of each literal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vals, err := parseArgs(args)
		if err != nil {
			return err
		}
		reports := make([]report, len(vals))
		for i, v := range vals {
			reports[i] = reportOf(v)
		}

		out := cmd.OutOrStdout()
		if viper.GetString("format") == "json" {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		}
		for _, r := range reports {
			fmt.Fprintf(out, "%-12s empty=%-5v hash=%016x  %s\n", r.Type, r.Empty, r.Hash, r.Text)
		}
		return nil
	},
}
