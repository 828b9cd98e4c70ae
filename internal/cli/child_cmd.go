package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Tanudin/Happy-Child/internal/cli/formatter"
	"github.com/Tanudin/Happy-Child/internal/domain"
	"github.com/spf13/cobra"
)

func resolveChildID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("child name or ID is required")
	}

	children, err := app.Children.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact name match (case-insensitive)
	for _, c := range children {
		if strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}

	// 2. Exact UUID match
	for _, c := range children {
		if c.ID == input {
			return c.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, c := range children {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("child not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("child ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newChildCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "child",
		Short: "Manage children",
	}

	cmd.AddCommand(
		newChildAddCmd(app),
		newChildListCmd(app),
		newChildRemoveCmd(app),
	)

	return cmd
}

func newChildAddCmd(app *App) *cobra.Command {
	var name, birth string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a child",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Child{Name: name, CreatedAt: time.Now()}

			if birth != "" {
				birthDate, err := domain.ParseCalDate(birth)
				if err != nil {
					return fmt.Errorf("invalid birth date %q: %w", birth, err)
				}
				c.BirthDate = &birthDate
			}

			if err := app.Children.Create(context.Background(), c); err != nil {
				return err
			}

			fmt.Printf("Added child %s\n", c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Child's name")
	cmd.Flags().StringVar(&birth, "birth", "", "Birth date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newChildListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List children",
		RunE: func(cmd *cobra.Command, args []string) error {
			children, err := app.Children.List(context.Background())
			if err != nil {
				return err
			}

			if len(children) == 0 {
				fmt.Println("No children yet. Add one with `happychild child add --name NAME`.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatChildList(children))
			return nil
		},
	}
}

func newChildRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a child and everything scheduled for them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Children.Delete(ctx, childID); err != nil {
				return err
			}
			fmt.Printf("Removed child %s\n", args[0])
			return nil
		},
	}
}
