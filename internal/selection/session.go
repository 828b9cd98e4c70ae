// Package selection owns the live state behind one calendar view: the
// date-keyed map of scheduled activities for a child's visible month,
// plus the child's custody schedules. The map is the source of truth the
// UI renders; every mutation goes through the store first so a date key
// exists in the map if and only if a persisted record is believed to
// exist.
package selection

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Tanudin/Happy-Child/internal/domain"
	"github.com/Tanudin/Happy-Child/internal/service"
)

// Entry is one selected day: a date and its activity name.
type Entry struct {
	Date     domain.CalDate
	Activity string
}

// Request identifies one hydration round. Generation numbers are issued
// monotonically; only the result of the latest issued request may be
// applied, so a slow fetch for a previous month or child can never
// clobber newer state (last-request-wins).
type Request struct {
	Gen     uint64
	ChildID string
	Year    int
	Month   time.Month
}

// Result carries fetched state back to the session for application.
type Result struct {
	Req        Request
	Activities []*domain.ScheduledActivity
	Schedules  []*domain.CustodySchedule
}

// Session is a per-child calendar view-session. It is driven from a
// single control flow (the TUI update loop); fetches run concurrently
// but their results funnel back through Apply.
type Session struct {
	events  service.EventService
	custody service.CustodyService

	childID string
	year    int
	month   time.Month

	gen       uint64
	entries   map[string]Entry
	schedules []*domain.CustodySchedule
}

// NewSession creates an empty session. Nothing is fetched until the
// caller issues a hydration request.
func NewSession(events service.EventService, custody service.CustodyService) *Session {
	return &Session{
		events:  events,
		custody: custody,
		entries: make(map[string]Entry),
	}
}

// ── hydration ────────────────────────────────────────────────────────────────

// Hydrate issues a new request generation for the given scope,
// invalidating any fetch still in flight.
func (s *Session) Hydrate(childID string, year int, month time.Month) Request {
	s.gen++
	s.childID = childID
	s.year = year
	s.month = month
	return Request{Gen: s.gen, ChildID: childID, Year: year, Month: month}
}

// Fetch loads the request's month of activities and the child's custody
// schedules. Safe to run off the update loop; it touches no session
// state.
func (s *Session) Fetch(ctx context.Context, req Request) (Result, error) {
	activities, err := s.events.FetchMonth(ctx, req.ChildID, req.Year, int(req.Month))
	if err != nil {
		return Result{}, fmt.Errorf("fetching month %d-%02d: %w", req.Year, req.Month, err)
	}
	schedules, err := s.custody.ListByChild(ctx, req.ChildID)
	if err != nil {
		return Result{}, fmt.Errorf("fetching custody schedules: %w", err)
	}
	return Result{Req: req, Activities: activities, Schedules: schedules}, nil
}

// Apply replaces the whole selection map with the fetched state. Results
// from a superseded generation are dropped and Apply reports false. The
// replace is total: local edits made after the request was issued but
// before its result arrived are discarded with it.
func (s *Session) Apply(res Result) bool {
	if res.Req.Gen != s.gen {
		return false
	}
	entries := make(map[string]Entry, len(res.Activities))
	for _, a := range res.Activities {
		date := a.Date()
		entries[date.Key()] = Entry{Date: date, Activity: a.ActivityName}
	}
	s.entries = entries
	s.schedules = res.Schedules
	return true
}

// ── two-phase input ──────────────────────────────────────────────────────────

type pendingKind int

const (
	pendingAdd pendingKind = iota
	pendingEdit
)

// PendingInput is an input request waiting for a value. The session is
// not mutated until Commit succeeds; Cancel abandons the request with no
// mutation at all.
type PendingInput struct {
	session *Session
	date    domain.CalDate
	kind    pendingKind
	done    bool
}

// BeginAdd starts adding an activity on a date with no entry.
func (s *Session) BeginAdd(date domain.CalDate) (*PendingInput, error) {
	if _, exists := s.entries[date.Key()]; exists {
		return nil, fmt.Errorf("%s already has an activity", date)
	}
	return &PendingInput{session: s, date: date, kind: pendingAdd}, nil
}

// BeginEdit starts renaming the existing entry on a date.
func (s *Session) BeginEdit(date domain.CalDate) (*PendingInput, error) {
	if _, exists := s.entries[date.Key()]; !exists {
		return nil, fmt.Errorf("%s has no activity to edit", date)
	}
	return &PendingInput{session: s, date: date, kind: pendingEdit}, nil
}

// Commit persists the entered value and, only after the store call
// succeeds, updates the in-memory map.
func (p *PendingInput) Commit(ctx context.Context, value string) error {
	if p.done {
		return fmt.Errorf("input already resolved")
	}
	s := p.session

	switch p.kind {
	case pendingAdd:
		if err := s.events.UpsertActivity(ctx, s.childID, p.date, value); err != nil {
			return err
		}
	case pendingEdit:
		if err := s.events.RenameActivity(ctx, s.childID, p.date, value); err != nil {
			return err
		}
	}
	s.entries[p.date.Key()] = Entry{Date: p.date, Activity: value}
	p.done = true
	return nil
}

// Cancel abandons the pending input; no mutation occurs.
func (p *PendingInput) Cancel() {
	p.done = true
}

// ── direct mutations ─────────────────────────────────────────────────────────

// Remove deletes the day's persisted record, then drops the map entry.
func (s *Session) Remove(ctx context.Context, date domain.CalDate) error {
	if _, exists := s.entries[date.Key()]; !exists {
		return fmt.Errorf("%s has no activity to remove", date)
	}
	if err := s.events.DeleteActivity(ctx, s.childID, date); err != nil {
		return err
	}
	delete(s.entries, date.Key())
	return nil
}

// ConfirmAll finalizes every entry in the map as a single batch: the
// store replaces each day's record and inserts the whole set fresh.
func (s *Session) ConfirmAll(ctx context.Context) error {
	entries := s.Entries()
	picks := make([]service.Pick, 0, len(entries))
	for _, e := range entries {
		picks = append(picks, service.Pick{Date: e.Date, Activity: e.Activity})
	}
	return s.events.ConfirmAll(ctx, s.childID, picks)
}

// ── accessors ────────────────────────────────────────────────────────────────

// Entry returns the selected activity for a date, if any.
func (s *Session) Entry(date domain.CalDate) (Entry, bool) {
	e, ok := s.entries[date.Key()]
	return e, ok
}

// Entries returns all selected days in date order.
func (s *Session) Entries() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (s *Session) Len() int { return len(s.entries) }

// Schedules returns the child's custody schedules as of the last applied
// hydration. Read-only for the life of a grid render.
func (s *Session) Schedules() []*domain.CustodySchedule { return s.schedules }

func (s *Session) ChildID() string   { return s.childID }
func (s *Session) Year() int         { return s.year }
func (s *Session) Month() time.Month { return s.month }
