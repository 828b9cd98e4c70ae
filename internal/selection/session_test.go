package selection_test

import (
	"context"
	"testing"
	"time"

	"github.com/Tanudin/Happy-Child/internal/domain"
	"github.com/Tanudin/Happy-Child/internal/repository"
	"github.com/Tanudin/Happy-Child/internal/selection"
	"github.com/Tanudin/Happy-Child/internal/service"
	"github.com/Tanudin/Happy-Child/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyEvents wraps a real EventService and counts store calls.
type spyEvents struct {
	service.EventService
	deletes  int
	upserts  int
	confirms [][]service.Pick
}

func (s *spyEvents) DeleteActivity(ctx context.Context, childID string, date domain.CalDate) error {
	s.deletes++
	return s.EventService.DeleteActivity(ctx, childID, date)
}

func (s *spyEvents) UpsertActivity(ctx context.Context, childID string, date domain.CalDate, name string) error {
	s.upserts++
	return s.EventService.UpsertActivity(ctx, childID, date, name)
}

func (s *spyEvents) ConfirmAll(ctx context.Context, childID string, picks []service.Pick) error {
	s.confirms = append(s.confirms, picks)
	return s.EventService.ConfirmAll(ctx, childID, picks)
}

type sessionFixture struct {
	session *selection.Session
	events  *spyEvents
	custody service.CustodyService
	childID string
}

func newSessionFixture(t *testing.T) sessionFixture {
	t.Helper()
	ctx := context.Background()
	sqlDB := testutil.NewTestDB(t)

	profileRepo := repository.NewSQLiteUserProfileRepo(sqlDB)
	require.NoError(t, profileRepo.Upsert(ctx, testutil.NewTestProfile("Sofia")))

	childRepo := repository.NewSQLiteChildRepo(sqlDB)
	child := testutil.NewTestChild("Alma")
	require.NoError(t, childRepo.Create(ctx, child))

	identity := service.NewIdentityService(profileRepo)
	events := &spyEvents{EventService: service.NewEventService(
		repository.NewSQLiteEventRepo(sqlDB), childRepo, identity, testutil.NewTestUoW(sqlDB))}
	custody := service.NewCustodyService(repository.NewSQLiteCustodyRepo(sqlDB), identity)

	return sessionFixture{
		session: selection.NewSession(events, custody),
		events:  events,
		custody: custody,
		childID: child.ID,
	}
}

// hydrate runs a full request/fetch/apply round for the given month.
func hydrate(t *testing.T, f sessionFixture, year int, month time.Month) {
	t.Helper()
	req := f.session.Hydrate(f.childID, year, month)
	res, err := f.session.Fetch(context.Background(), req)
	require.NoError(t, err)
	require.True(t, f.session.Apply(res))
}

func TestSession_AddThenHydrateRoundTrip(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	hydrate(t, f, 2024, time.March)

	date := domain.NewCalDate(2024, time.March, 10)
	pending, err := f.session.BeginAdd(date)
	require.NoError(t, err)
	require.NoError(t, pending.Commit(ctx, "Soccer"))

	hydrate(t, f, 2024, time.March)

	entries := f.session.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, date, entries[0].Date)
	assert.Equal(t, "Soccer", entries[0].Activity)

	got, ok := f.session.Entry(date)
	require.True(t, ok)
	assert.Equal(t, "Soccer", got.Activity)
}

func TestSession_RemoveAfterAdd(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	hydrate(t, f, 2024, time.March)

	date := domain.NewCalDate(2024, time.March, 10)
	pending, err := f.session.BeginAdd(date)
	require.NoError(t, err)
	require.NoError(t, pending.Commit(ctx, "Soccer"))

	require.NoError(t, f.session.Remove(ctx, date))

	assert.Zero(t, f.session.Len(), "map empty after remove")
	assert.Equal(t, 1, f.events.deletes, "exactly one delete call")

	hydrate(t, f, 2024, time.March)
	assert.Zero(t, f.session.Len(), "store empty after remove")
}

func TestSession_RemoveWithoutEntry(t *testing.T) {
	f := newSessionFixture(t)
	hydrate(t, f, 2024, time.March)

	err := f.session.Remove(context.Background(), domain.NewCalDate(2024, time.March, 10))
	require.Error(t, err)
	assert.Zero(t, f.events.deletes, "no store call for an absent entry")
}

func TestSession_StaleHydrationDropped(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	hydrate(t, f, 2024, time.March)

	pending, err := f.session.BeginAdd(domain.NewCalDate(2024, time.March, 10))
	require.NoError(t, err)
	require.NoError(t, pending.Commit(ctx, "Soccer"))

	marchReq := f.session.Hydrate(f.childID, 2024, time.March)
	marchRes, err := f.session.Fetch(ctx, marchReq)
	require.NoError(t, err)

	// A newer request supersedes the March fetch before it lands.
	aprilReq := f.session.Hydrate(f.childID, 2024, time.April)
	aprilRes, err := f.session.Fetch(ctx, aprilReq)
	require.NoError(t, err)
	require.True(t, f.session.Apply(aprilRes))

	assert.False(t, f.session.Apply(marchRes), "stale result must be dropped")
	assert.Zero(t, f.session.Len(), "state still reflects the April fetch")
	assert.Equal(t, time.April, f.session.Month())
}

func TestSession_ApplyReplacesWholeMap(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	hydrate(t, f, 2024, time.March)

	pending, err := f.session.BeginAdd(domain.NewCalDate(2024, time.March, 10))
	require.NoError(t, err)
	require.NoError(t, pending.Commit(ctx, "Soccer"))

	hydrate(t, f, 2024, time.April)
	assert.Zero(t, f.session.Len(), "April carries no March entries")
}

func TestSession_BeginAddRejectsOccupiedDate(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	hydrate(t, f, 2024, time.March)

	date := domain.NewCalDate(2024, time.March, 10)
	pending, err := f.session.BeginAdd(date)
	require.NoError(t, err)
	require.NoError(t, pending.Commit(ctx, "Soccer"))

	_, err = f.session.BeginAdd(date)
	assert.Error(t, err)
}

func TestSession_BeginEditRequiresEntry(t *testing.T) {
	f := newSessionFixture(t)
	hydrate(t, f, 2024, time.March)

	_, err := f.session.BeginEdit(domain.NewCalDate(2024, time.March, 10))
	assert.Error(t, err)
}

func TestSession_EditRenamesEntry(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	hydrate(t, f, 2024, time.March)

	date := domain.NewCalDate(2024, time.March, 10)
	pending, err := f.session.BeginAdd(date)
	require.NoError(t, err)
	require.NoError(t, pending.Commit(ctx, "Soccer"))

	edit, err := f.session.BeginEdit(date)
	require.NoError(t, err)
	require.NoError(t, edit.Commit(ctx, "Piano"))

	got, ok := f.session.Entry(date)
	require.True(t, ok)
	assert.Equal(t, "Piano", got.Activity)

	hydrate(t, f, 2024, time.March)
	got, ok = f.session.Entry(date)
	require.True(t, ok)
	assert.Equal(t, "Piano", got.Activity, "rename persisted")
}

func TestSession_CommitBlankNameLeavesMapUntouched(t *testing.T) {
	f := newSessionFixture(t)
	hydrate(t, f, 2024, time.March)

	date := domain.NewCalDate(2024, time.March, 10)
	pending, err := f.session.BeginAdd(date)
	require.NoError(t, err)

	err = pending.Commit(context.Background(), "  ")
	require.Error(t, err)
	assert.True(t, service.IsValidation(err))
	assert.Zero(t, f.session.Len())
}

func TestSession_CancelMakesNoStoreCall(t *testing.T) {
	f := newSessionFixture(t)
	hydrate(t, f, 2024, time.March)

	pending, err := f.session.BeginAdd(domain.NewCalDate(2024, time.March, 10))
	require.NoError(t, err)
	pending.Cancel()

	assert.Zero(t, f.events.upserts)
	assert.Zero(t, f.session.Len())

	err = pending.Commit(context.Background(), "Soccer")
	assert.Error(t, err, "cancelled input cannot be committed")
}

func TestSession_ConfirmAllPassesEntriesInDateOrder(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	hydrate(t, f, 2024, time.March)

	for _, d := range []int{18, 4, 11} {
		pending, err := f.session.BeginAdd(domain.NewCalDate(2024, time.March, d))
		require.NoError(t, err)
		require.NoError(t, pending.Commit(ctx, "Swim"))
	}

	require.NoError(t, f.session.ConfirmAll(ctx))

	require.Len(t, f.events.confirms, 1)
	picks := f.events.confirms[0]
	require.Len(t, picks, 3)
	assert.Equal(t, 4, picks[0].Date.Day)
	assert.Equal(t, 11, picks[1].Date.Day)
	assert.Equal(t, 18, picks[2].Date.Day)
}
