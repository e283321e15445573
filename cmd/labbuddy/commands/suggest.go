package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MdAbusufiyan/lab-buddy/internal/ui/output"
)

func (c *CLI) newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <prefix>",
		Short: "List completion candidates for a prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions, err := c.app.Suggest(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), output.RenderSuggestions(suggestions))
			return nil
		},
	}
}
