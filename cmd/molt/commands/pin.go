package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/molt/internal/app"
)

func (c *CLI) newPinCmd() *cobra.Command {
	var opts app.PinOptions

	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Resolve the lock file and write the cache manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Pin(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.LockPath, "lock", "", "Path to the lock file (defaults to the configured path)")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Path to write the manifest to (defaults to the configured path)")

	return cmd
}
