package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tanudin/Happy-Child/internal/service"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Create or replace the local profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Identity.Login(context.Background(), name, email)
			if err != nil {
				return err
			}

			fmt.Printf("Logged in as %s\n", profile.DisplayName)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address (optional)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Identity.CurrentUser(context.Background())
			if errors.Is(err, service.ErrNoCurrentUser) {
				return fmt.Errorf("no profile yet; run `happychild login --name NAME`")
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s", profile.DisplayName)
			if profile.Email != "" {
				fmt.Printf(" <%s>", profile.Email)
			}
			fmt.Println()
			return nil
		},
	}
}
