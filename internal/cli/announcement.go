package cli

import (
	"github.com/spf13/cobra"

	"github.com/mwhitfield/clubstore/internal/repository"
)

func newAnnouncementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "announcement",
		Short: "Announcement commands",
	}

	cmd.AddCommand(newAnnouncementListCmd())
	cmd.AddCommand(newAnnouncementAddCmd())

	return cmd
}

func newAnnouncementListCmd() *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List announcements, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			var announcements any

			if recent > 0 {
				announcements, err = app.Announcements.Recent(cmd.Context(), recent)
			} else {
				announcements, err = app.Announcements.List(cmd.Context())
			}
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(announcements)
			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 0, "Limit to the N newest announcements")

	return cmd
}

func newAnnouncementAddCmd() *cobra.Command {
	var title, message string
	var important bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Post a new announcement",
		RunE: func(cmd *cobra.Command, args []string) error {
			announcement, err := app.Announcements.Save(cmd.Context(), repository.AnnouncementDraft{
				Title:     title,
				Date:      app.Clock.Now(),
				Message:   message,
				Important: important,
			})
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*announcement)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&message, "message", "", "Message body (required)")
	cmd.Flags().BoolVar(&important, "important", false, "Flag as important")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
