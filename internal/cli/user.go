package cli

import (
	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User account commands",
	}

	cmd.AddCommand(newUserRegisterCmd())
	cmd.AddCommand(newUserLoginCmd())
	cmd.AddCommand(newUserWhoamiCmd())
	cmd.AddCommand(newUserLogoutCmd())

	return cmd
}

func newUserRegisterCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user account",
		Long: `Registers a new account. Registration does not log the account in;
run "user login" afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Auth.Register(cmd.Context(), username, email, password)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*user)
			out.PrintMessage("registered; log in with: clubstore user login")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "Username (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&password, "pass", "", "Password, at least 5 characters (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newUserLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Auth.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*user)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "Username (required)")
	cmd.Flags().StringVar(&password, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newUserWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Auth.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if user == nil {
				out.PrintMessage("not logged in")
				return nil
			}
			out.Print(*user)
			return nil
		},
	}
}

func newUserLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("logged out")
			return nil
		},
	}
}
