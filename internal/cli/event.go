package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/clubstore/internal/model"
	"github.com/mwhitfield/clubstore/internal/repository"
)

func newEventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Event management commands",
	}

	cmd.AddCommand(newEventListCmd())
	cmd.AddCommand(newEventGetCmd())
	cmd.AddCommand(newEventAddCmd())
	cmd.AddCommand(newEventRemoveCmd())

	return cmd
}

func newEventListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all events",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Events.List(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(events)
			return nil
		},
	}
}

func newEventGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one event with its registration window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := app.Events.GetByID(cmd.Context(), model.EventID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*event)

			window := event.RegistrationWindow(app.Clock.Now())
			if window.Open {
				out.PrintMessage(fmt.Sprintf("registration open, %d days left", window.DaysRemaining))
			} else {
				out.PrintMessage("registration closed")
			}
			return nil
		},
	}
}

func newEventAddCmd() *cobra.Command {
	var title, category, date, location, deadline string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new event",
		RunE: func(cmd *cobra.Command, args []string) error {
			eventDate, err := parseDateTime(date)
			if err != nil {
				return err
			}
			eventDeadline, err := parseDateTime(deadline)
			if err != nil {
				return err
			}

			event, err := app.Events.Save(cmd.Context(), repository.EventDraft{
				Title:                title,
				Category:             category,
				Date:                 eventDate,
				Location:             location,
				RegistrationDeadline: eventDeadline,
			})
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*event)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title (required)")
	cmd.Flags().StringVar(&category, "category", "", "Category (required)")
	cmd.Flags().StringVar(&date, "date", "", "Event datetime, RFC 3339 (required)")
	cmd.Flags().StringVar(&location, "location", "", "Location (required)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Registration deadline, RFC 3339 (required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("deadline")

	return cmd
}

func newEventRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Events.Delete(cmd.Context(), model.EventID(args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("event deleted")
			return nil
		},
	}
}

// parseDateTime accepts RFC 3339, falling back to a bare date at midnight UTC
func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q: expected RFC 3339 or YYYY-MM-DD", s)
	}
	return d.Time, nil
}
