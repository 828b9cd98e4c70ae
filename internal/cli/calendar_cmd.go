package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Tanudin/Happy-Child/internal/calendar"
	"github.com/Tanudin/Happy-Child/internal/cli/formatter"
	"github.com/Tanudin/Happy-Child/internal/domain"
	"github.com/Tanudin/Happy-Child/internal/selection"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var child string
	var month monthFlag

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Open the interactive month calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, child)
			if err != nil {
				return err
			}
			c, err := app.Children.GetByID(ctx, childID)
			if err != nil {
				return err
			}
			year, mon := month.orNow(time.Now())

			if app.IsInteractive == nil || !app.IsInteractive() {
				return printMonth(ctx, app, c, year, mon)
			}

			model := newCalendarModel(app, c, year, mon)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&child, "child", "", "Child name or ID")
	cmd.Flags().Var(&month, "month", "Month to show (YYYY-MM, defaults to current)")
	_ = cmd.MarkFlagRequired("child")

	return cmd
}

// printMonth renders one month to stdout for non-interactive use.
func printMonth(ctx context.Context, app *App, child *domain.Child, year int, month time.Month) error {
	session := selection.NewSession(app.Events, app.Custody)
	req := session.Hydrate(child.ID, year, month)
	res, err := session.Fetch(ctx, req)
	if err != nil {
		return err
	}
	session.Apply(res)

	grid := calendar.BuildMonthGrid(year, month)
	view := formatter.BuildMonthView(grid, func(d domain.CalDate) (string, bool) {
		entry, ok := session.Entry(d)
		return entry.Activity, ok
	}, session.Schedules(), domain.DateOf(time.Now()))

	fmt.Println(formatter.Bold(child.Name))
	fmt.Println(formatter.RenderMonth(view, domain.CalDate{}))
	if legend := formatter.Legend(session.Schedules()); legend != "" {
		fmt.Println(legend)
	}
	for _, entry := range session.Entries() {
		fmt.Printf("%s  %s\n", formatter.Dim(entry.Date.Key()), entry.Activity)
	}
	return nil
}
