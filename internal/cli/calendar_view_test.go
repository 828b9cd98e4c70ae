package cli

import (
	"context"
	"testing"
	"time"

	"github.com/Tanudin/Happy-Child/internal/domain"
	"github.com/Tanudin/Happy-Child/internal/repository"
	"github.com/Tanudin/Happy-Child/internal/service"
	"github.com/Tanudin/Happy-Child/internal/teatest"
	"github.com/Tanudin/Happy-Child/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App over an in-memory store with a logged-in
// profile and one child.
func testApp(t *testing.T) (*App, *domain.Child) {
	t.Helper()
	ctx := context.Background()
	sqlDB := testutil.NewTestDB(t)

	profileRepo := repository.NewSQLiteUserProfileRepo(sqlDB)
	require.NoError(t, profileRepo.Upsert(ctx, testutil.NewTestProfile("Sofia")))

	childRepo := repository.NewSQLiteChildRepo(sqlDB)
	child := testutil.NewTestChild("Alma")
	require.NoError(t, childRepo.Create(ctx, child))

	identity := service.NewIdentityService(profileRepo)
	app := &App{
		Events:        service.NewEventService(repository.NewSQLiteEventRepo(sqlDB), childRepo, identity, testutil.NewTestUoW(sqlDB)),
		Custody:       service.NewCustodyService(repository.NewSQLiteCustodyRepo(sqlDB), identity),
		Children:      service.NewChildService(childRepo, identity),
		Identity:      identity,
		IsInteractive: func() bool { return false },
	}
	return app, child
}

func newCalendarDriver(t *testing.T, app *App, child *domain.Child) *teatest.Driver {
	t.Helper()
	m := newCalendarModel(app, child, 2024, time.March)
	d := teatest.New(t, m)
	d.DrainInit()
	return d
}

func calModel(d *teatest.Driver) *calendarModel {
	return d.Model.(*calendarModel)
}

func TestCalendarTUI_LoadsMonthOnStartup(t *testing.T) {
	app, child := testApp(t)
	d := newCalendarDriver(t, app, child)

	view := d.View()
	assert.Contains(t, view, "March 2024")
	assert.Contains(t, view, "Alma")
	assert.NotContains(t, view, "Loading")
	assert.False(t, calModel(d).loading)
}

func TestCalendarTUI_QuitKeys(t *testing.T) {
	app, child := testApp(t)

	d := newCalendarDriver(t, app, child)
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d = newCalendarDriver(t, app, child)
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

func TestCalendarTUI_CursorMovement(t *testing.T) {
	app, child := testApp(t)
	d := newCalendarDriver(t, app, child)

	require.Equal(t, domain.NewCalDate(2024, time.March, 1), calModel(d).cursor)

	d.PressKey('l')
	assert.Equal(t, domain.NewCalDate(2024, time.March, 2), calModel(d).cursor)

	d.PressDown()
	assert.Equal(t, domain.NewCalDate(2024, time.March, 9), calModel(d).cursor)

	d.PressUp()
	d.PressKey('h')
	assert.Equal(t, domain.NewCalDate(2024, time.March, 1), calModel(d).cursor)
}

func TestCalendarTUI_CursorCrossesMonthBoundary(t *testing.T) {
	app, child := testApp(t)
	d := newCalendarDriver(t, app, child)

	// Left from March 1 lands on February 29 and navigates the view.
	d.PressKey('h')

	m := calModel(d)
	assert.Equal(t, domain.NewCalDate(2024, time.February, 29), m.cursor)
	assert.Equal(t, time.February, m.month)
	assert.Contains(t, d.View(), "February 2024")
}

func TestCalendarTUI_MonthNavigationKeys(t *testing.T) {
	app, child := testApp(t)
	d := newCalendarDriver(t, app, child)

	d.PressKey(']')
	assert.Contains(t, d.View(), "April 2024")

	d.PressKey('[')
	d.PressKey('[')
	assert.Contains(t, d.View(), "February 2024")
}

func TestCalendarTUI_MonthNavigationClampsCursorDay(t *testing.T) {
	app, child := testApp(t)
	d := newCalendarDriver(t, app, child)

	// March 31 has no counterpart in April.
	m := calModel(d)
	m.cursor = domain.NewCalDate(2024, time.March, 31)

	d.PressKey(']')
	assert.Equal(t, domain.NewCalDate(2024, time.April, 30), calModel(d).cursor)
}

func TestCalendarTUI_AddActivityThroughForm(t *testing.T) {
	app, child := testApp(t)
	d := newCalendarDriver(t, app, child)

	d.PressEnter()
	require.Equal(t, formActivity, calModel(d).mode)

	d.Type("Soccer")
	d.PressEnter()

	m := calModel(d)
	assert.Equal(t, formNone, m.mode)
	entry, ok := m.session.Entry(domain.NewCalDate(2024, time.March, 1))
	require.True(t, ok)
	assert.Equal(t, "Soccer", entry.Activity)

	events, err := app.Events.FetchMonth(context.Background(), child.ID, 2024, 3)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Soccer", events[0].ActivityName)
}

func TestCalendarTUI_EscCancelsForm(t *testing.T) {
	app, child := testApp(t)
	d := newCalendarDriver(t, app, child)

	d.PressEnter()
	require.Equal(t, formActivity, calModel(d).mode)

	d.PressEsc()

	m := calModel(d)
	assert.Equal(t, formNone, m.mode)
	assert.Zero(t, m.session.Len())

	events, err := app.Events.FetchMonth(context.Background(), child.ID, 2024, 3)
	require.NoError(t, err)
	assert.Empty(t, events, "cancel writes nothing")
}

func TestCalendarTUI_DeleteUnderCursor(t *testing.T) {
	app, child := testApp(t)
	ctx := context.Background()
	date := domain.NewCalDate(2024, time.March, 1)
	require.NoError(t, app.Events.UpsertActivity(ctx, child.ID, date, "Soccer"))

	d := newCalendarDriver(t, app, child)
	_, ok := calModel(d).session.Entry(date)
	require.True(t, ok)

	d.PressKey('d')

	_, ok = calModel(d).session.Entry(date)
	assert.False(t, ok)

	events, err := app.Events.FetchMonth(ctx, child.ID, 2024, 3)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCalendarTUI_DeleteOnEmptyDayIsNoop(t *testing.T) {
	app, child := testApp(t)
	d := newCalendarDriver(t, app, child)

	d.PressKey('d')
	assert.NoError(t, calModel(d).err)
}

func TestCalendarTUI_ConfirmAll(t *testing.T) {
	app, child := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.Events.UpsertActivity(ctx, child.ID, domain.NewCalDate(2024, time.March, 1), "Soccer"))
	require.NoError(t, app.Events.UpsertActivity(ctx, child.ID, domain.NewCalDate(2024, time.March, 8), "Piano"))

	d := newCalendarDriver(t, app, child)
	d.PressKey('c')

	assert.Contains(t, d.View(), "Confirmed 2 activities")

	events, err := app.Events.FetchMonth(ctx, child.ID, 2024, 3)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestCalendarTUI_ScheduleFormSubmit(t *testing.T) {
	app, child := testApp(t)
	d := newCalendarDriver(t, app, child)

	d.PressKey('s')
	m := calModel(d)
	require.Equal(t, formSchedule, m.mode)

	// Fill the form fields directly and submit through the model path.
	m.formInput = scheduleInput{
		Days:       []int{0, 1, 2},
		ParentName: "Anna",
		ParentType: "mom",
		Color:      "#d3869b",
	}
	updated, cmd := m.submitForm()
	d.Model = updated
	require.NotNil(t, cmd)
	d.Send(cmd())

	schedules, err := app.Custody.ListByChild(context.Background(), child.ID)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "Anna", schedules[0].ParentName)
	assert.Equal(t, []int{0, 1, 2}, schedules[0].SortedDays())

	view := d.View()
	assert.Contains(t, view, "Anna", "legend shows the new schedule after reload")
}
