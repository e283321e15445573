package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/MdAbusufiyan/lab-buddy/internal/app"
	"github.com/MdAbusufiyan/lab-buddy/internal/ui/output"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Resolve a chemical name, CAS number, or SMILES string",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refresh, _ := cmd.Flags().GetBool("refresh")
			asJSON, _ := cmd.Flags().GetBool("json")

			result, err := c.app.Search(cmd.Context(), strings.Join(args, " "), app.SearchOptions{
				Refresh: refresh,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, marshalErr := json.MarshalIndent(result.Record, "", "  ")
				if marshalErr != nil {
					return zerr.Wrap(marshalErr, "failed to encode record")
				}
				_, _ = fmt.Fprintln(out, string(data))
				return nil
			}

			_, _ = fmt.Fprint(out, output.RenderRecord(result.Record, result.FromCache))
			return nil
		},
	}
	cmd.Flags().BoolP("refresh", "r", false, "Backfill missing fields of the cached entry after resolving")
	cmd.Flags().Bool("json", false, "Print the raw record as JSON")
	return cmd
}
