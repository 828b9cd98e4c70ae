package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

func validateRequired(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

// activityForm returns a single-field form collecting an activity name.
func activityForm(title string, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("Soccer practice").
				Value(value).
				Validate(validateRequired),
		),
	).WithTheme(happychildHuhTheme()).WithShowHelp(false)
}

// scheduleInput collects the fields of a new custody schedule.
type scheduleInput struct {
	Days       []int
	ParentName string
	ParentType string
	Color      string
}

// scheduleForm returns a form collecting a weekly custody schedule:
// which weekdays, which parent, and the bar color.
func scheduleForm(in *scheduleInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Weekdays").
				Options(
					huh.NewOption("Monday", 0),
					huh.NewOption("Tuesday", 1),
					huh.NewOption("Wednesday", 2),
					huh.NewOption("Thursday", 3),
					huh.NewOption("Friday", 4),
					huh.NewOption("Saturday", 5),
					huh.NewOption("Sunday", 6),
				).
				Value(&in.Days).
				Validate(func(days []int) error {
					if len(days) == 0 {
						return fmt.Errorf("pick at least one weekday")
					}
					return nil
				}),
			huh.NewInput().
				Title("Parent's name").
				Placeholder("Anna").
				Value(&in.ParentName).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Parent").
				Options(
					huh.NewOption("Mom", "mom"),
					huh.NewOption("Dad", "dad"),
				).
				Value(&in.ParentType),
			huh.NewSelect[string]().
				Title("Bar color").
				Options(
					huh.NewOption("Blue", "#4285f4"),
					huh.NewOption("Pink", "#d3869b"),
					huh.NewOption("Green", "#8ec07c"),
					huh.NewOption("Yellow", "#fabd2f"),
					huh.NewOption("Red", "#fb4934"),
				).
				Value(&in.Color),
		),
	).WithTheme(happychildHuhTheme()).WithShowHelp(false)
}
