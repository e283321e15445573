// Package commands implements the CLI commands for labbuddy.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MdAbusufiyan/lab-buddy/internal/app"
	"github.com/MdAbusufiyan/lab-buddy/internal/build"
	"github.com/MdAbusufiyan/lab-buddy/internal/engine/resolve"
)

// CLI represents the command line interface for labbuddy.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Search(ctx context.Context, query string, opts app.SearchOptions) (*resolve.Result, error)
	Suggest(ctx context.Context, prefix string) ([]string, error)
	Interactive(ctx context.Context) error
	CacheVerify() error
	CachePath() string
	CacheClear() error
	CacheKeys() []string
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "labbuddy",
		Short:         "Resolve chemical identifiers into structured records",
		Long:          "labbuddy resolves chemical names, CAS numbers, and SMILES strings\ninto structured records, backed by a signed local cache.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.Interactive(cmd.Context())
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newSuggestCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
