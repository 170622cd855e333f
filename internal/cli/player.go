package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/clubstore/internal/model"
	"github.com/mwhitfield/clubstore/internal/repository"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerRemoveCmd())

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all players",
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := app.Players.List(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(players)
			return nil
		},
	}
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one player with derived details",
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := app.Players.GetByID(cmd.Context(), model.PlayerID(args[0]))
			if err != nil {
				return err
			}

			teamName, err := app.Players.TeamName(cmd.Context(), player.TeamID)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*player)
			out.PrintMessage(fmt.Sprintf("age: %d, team: %s", player.Age(app.Clock.Now()), teamName))
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
}

func newPlayerAddCmd() *cobra.Command {
	var first, last, dob, gender, teamID, position, email, phone string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			var birthDate model.Date
			if dob != "" {
				parsed, err := model.ParseDate(dob)
				if err != nil {
					return err
				}
				birthDate = parsed
			}

			player, err := app.Players.Save(cmd.Context(), repository.PlayerDraft{
				FirstName:   first,
				LastName:    last,
				DateOfBirth: birthDate,
				Gender:      gender,
				TeamID:      model.TeamID(teamID),
				Position:    position,
				Email:       email,
				Phone:       phone,
			})
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*player)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first-name", "", "First name (required)")
	cmd.Flags().StringVar(&last, "last-name", "", "Last name (required)")
	cmd.Flags().StringVar(&dob, "dob", "", "Date of birth, YYYY-MM-DD")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&teamID, "team", "", "Team id (required)")
	cmd.Flags().StringVar(&position, "position", model.PositionForward, "Position")
	cmd.Flags().StringVar(&email, "email", "", "Contact email (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone (required)")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Players.Delete(cmd.Context(), model.PlayerID(args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("player deleted")
			return nil
		},
	}
}
