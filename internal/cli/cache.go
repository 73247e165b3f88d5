package cli

import (
	"github.com/spf13/cobra"
)

// newCacheCmd creates the cache management command group.
func newCacheCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the generation cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := e.openCache(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.Clear(ctx); err != nil {
				return err
			}
			printSuccess("cache cleared")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the file cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printDetail("%s", e.cfg.CacheDir())
			return nil
		},
	})

	return cmd
}
