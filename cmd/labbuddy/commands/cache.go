package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the local record cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "verify",
		Short: "Check the cache signature against the data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.CacheVerify(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cache signature valid")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.app.CachePath())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all cached records",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.CacheClear()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the keys of all cached records",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			keys := c.app.CacheKeys()
			if len(keys) == 0 {
				_, _ = fmt.Fprintln(out, "cache is empty")
				return
			}
			for _, key := range keys {
				_, _ = fmt.Fprintln(out, key)
			}
		},
	})

	return cmd
}
