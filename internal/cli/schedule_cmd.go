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

// weekdayNames maps day names and three-letter abbreviations to the
// Monday-indexed weekday used throughout the calendar.
var weekdayNames = map[string]int{
	"mon": 0, "monday": 0,
	"tue": 1, "tuesday": 1,
	"wed": 2, "wednesday": 2,
	"thu": 3, "thursday": 3,
	"fri": 4, "friday": 4,
	"sat": 5, "saturday": 5,
	"sun": 6, "sunday": 6,
}

func parseWeekdays(names []string) ([]int, error) {
	days := make([]int, 0, len(names))
	for _, name := range names {
		day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q (use mon..sun)", name)
		}
		days = append(days, day)
	}
	return days, nil
}

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage weekly custody schedules",
	}

	cmd.AddCommand(
		newScheduleAddCmd(app),
		newScheduleListCmd(app),
		newScheduleRemoveCmd(app),
	)

	return cmd
}

func newScheduleAddCmd(app *App) *cobra.Command {
	var child, parent, parentType, color string
	var dayNames []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Assign weekdays to a parent",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, child)
			if err != nil {
				return err
			}
			days, err := parseWeekdays(dayNames)
			if err != nil {
				return err
			}

			s := &domain.CustodySchedule{
				ChildID:    childID,
				DaysOfWeek: days,
				ParentName: parent,
				ParentType: domain.ParentType(parentType),
				Color:      color,
				CreatedAt:  time.Now(),
			}

			if err := app.Custody.Create(ctx, s); err != nil {
				return err
			}

			fmt.Printf("Assigned %s to %s\n", formatter.FormatWeekdays(days), s.ParentName)
			return nil
		},
	}

	cmd.Flags().StringVar(&child, "child", "", "Child name or ID")
	cmd.Flags().StringSliceVar(&dayNames, "days", nil, "Weekdays (e.g. mon,tue,wed)")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent's name")
	cmd.Flags().StringVar(&parentType, "type", "", "Parent type (mom|dad)")
	cmd.Flags().StringVar(&color, "color", "#4285f4", "Calendar bar color (hex)")
	_ = cmd.MarkFlagRequired("child")
	_ = cmd.MarkFlagRequired("days")
	_ = cmd.MarkFlagRequired("parent")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	var child string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List custody schedules for a child",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			childID, err := resolveChildID(ctx, app, child)
			if err != nil {
				return err
			}

			schedules, err := app.Custody.ListByChild(ctx, childID)
			if err != nil {
				return err
			}

			if len(schedules) == 0 {
				fmt.Println("No custody schedules yet.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatScheduleList(schedules))
			return nil
		},
	}

	cmd.Flags().StringVar(&child, "child", "", "Child name or ID")
	_ = cmd.MarkFlagRequired("child")

	return cmd
}

func newScheduleRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a custody schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Custody.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed schedule %s\n", args[0])
			return nil
		},
	}
}
