package cli

import (
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate empty collections with baseline sample data",
		Long: `Seeds any empty collection with baseline sample data. Collections
that already hold data are left untouched, so running seed repeatedly is safe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The root command already ran the seeder; running it again
			// here makes the idempotency explicit for scripting.
			if err := app.Seeder.Initialize(cmd.Context()); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("seed complete")
			return nil
		},
	}
}
