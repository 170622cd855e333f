package cli

import (
	"github.com/spf13/cobra"

	"github.com/mwhitfield/clubstore/internal/model"
	"github.com/mwhitfield/clubstore/internal/repository"
)

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team management commands",
	}

	cmd.AddCommand(newTeamListCmd())
	cmd.AddCommand(newTeamGetCmd())
	cmd.AddCommand(newTeamAddCmd())
	cmd.AddCommand(newTeamRemoveCmd())

	return cmd
}

func newTeamListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := app.Teams.List(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(teams)
			return nil
		},
	}
}

func newTeamGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			team, err := app.Teams.GetByID(cmd.Context(), model.TeamID(args[0]))
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*team)
			return nil
		},
	}
}

func newTeamAddCmd() *cobra.Command {
	var name, division, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new team",
		RunE: func(cmd *cobra.Command, args []string) error {
			team, err := app.Teams.Save(cmd.Context(), repository.TeamDraft{
				Name:     name,
				Division: division,
				Category: category,
			})
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*team)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Team name (required)")
	cmd.Flags().StringVar(&division, "division", "", "Division (required)")
	cmd.Flags().StringVar(&category, "category", "", "Category, e.g. Senior or Junior (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("division")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newTeamRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a team",
		Long: `Deletes a team. Players assigned to the team are kept; their team
reference resolves to "Unknown Team" afterwards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Teams.Delete(cmd.Context(), model.TeamID(args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("team deleted")
			return nil
		},
	}
}
