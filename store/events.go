package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gardiendutemps.fr/gardien/core"
	"gardiendutemps.fr/gardien/model"
	"gardiendutemps.fr/gardien/utils"
)

// ErrActionNotAllowed wraps a rejection from the Action Gate. Handlers unwrap
// it into a 409 with the reason; everything else is a plain server error.
var ErrActionNotAllowed = errors.New("action not allowed")

// EventStore fetches and appends time entries. All derived state lives in the
// core package; this adapter only supplies event lists and enforces the
// single-outstanding-submission discipline per user.
type EventStore struct {
	dm       *DatabaseManager
	location *time.Location

	mu       sync.Mutex
	inFlight map[int32]bool
	memos    map[int32]*core.TaskTimeMemo
}

func NewEventStore(dm *DatabaseManager, loc *time.Location) *EventStore {
	if loc == nil {
		loc = utils.ParisLocation()
	}
	return &EventStore{
		dm:       dm,
		location: loc,
		inFlight: make(map[int32]bool),
		memos:    make(map[int32]*core.TaskTimeMemo),
	}
}

func (s *EventStore) Location() *time.Location {
	return s.location
}

// GetEntries returns the raw stored entries for a user, optionally bounded to
// [from, to] by local date. No ordering is guaranteed.
func (s *EventStore) GetEntries(ctx context.Context, userID int32, from, to *time.Time) ([]model.TimeEntry, error) {
	var entries []model.TimeEntry
	err := s.dm.Exec(ctx, func(db *gorm.DB) error {
		query := db.Where("user_id = ?", userID)
		if from != nil {
			query = query.Where("date_time >= ?", from.Format(utils.DateLayout))
		}
		if to != nil {
			// inclusive end date
			query = query.Where("date_time < ?", to.AddDate(0, 0, 1).Format(utils.DateLayout))
		}
		return query.Find(&entries).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time entries: %w", err)
	}
	return entries, nil
}

// GetEvents fetches and parses a user's entries. Malformed rows are dropped
// with a warning, matching the skip policy of the engine. Each fresh fetch
// bumps the user's task-time memo generation.
func (s *EventStore) GetEvents(ctx context.Context, userID int32, from, to *time.Time) ([]core.Event, error) {
	entries, err := s.GetEntries(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	events, skipped := core.FromEntries(entries, s.location)
	if skipped > 0 {
		log.Printf("warning: skipped %d malformed time entries for user %d", skipped, userID)
	}
	s.memoFor(userID).Bump()
	return events, nil
}

// TodayEvents returns the user's events for the local date of now.
func (s *EventStore) TodayEvents(ctx context.Context, userID int32, now time.Time) ([]core.Event, error) {
	localNow := now.In(s.location)
	dayStart := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, s.location)
	events, err := s.GetEvents(ctx, userID, &dayStart, &dayStart)
	if err != nil {
		return nil, err
	}
	todayKey := localNow.Format(utils.DateLayout)
	return utils.Filter(events, func(e core.Event) bool {
		return e.At.Format(utils.DateLayout) == todayKey
	}), nil
}

// Submit records a clock action after re-checking the Action Gate against a
// freshly fetched event list. A second submission for the same user while one
// is in flight is rejected outright; that is what stops a double click from
// recording two arrivals.
func (s *EventStore) Submit(ctx context.Context, userID int32, proposal core.Proposal) (*model.TimeEntry, error) {
	if err := proposal.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrActionNotAllowed, err.Error())
	}

	if !s.acquire(userID) {
		return nil, fmt.Errorf("%w: another clock action is already in flight", ErrActionNotAllowed)
	}
	defer s.release(userID)

	today, err := s.TodayEvents(ctx, userID, proposal.At)
	if err != nil {
		return nil, err
	}

	localAt := proposal.At.In(s.location)
	day := core.ReconstructDay(localAt.Format(utils.DateLayout), today)
	if ok, reason := core.Authorize(day, proposal.Kind, false); !ok {
		return nil, fmt.Errorf("%w: %s", ErrActionNotAllowed, reason)
	}

	entry := model.TimeEntry{
		ID:           uuid.NewString(),
		UserID:       userID,
		TrackingType: proposal.Kind,
		DateTime:     localAt.Format(time.RFC3339),
		TaskID:       proposal.TaskID,
	}

	if err := s.dm.Exec(ctx, func(db *gorm.DB) error {
		return db.Create(&entry).Error
	}); err != nil {
		return nil, fmt.Errorf("failed to save time entry: %w", err)
	}

	s.memoFor(userID).Bump()
	return &entry, nil
}

// InFlight reports whether a submission is currently outstanding for the user.
func (s *EventStore) InFlight(userID int32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[userID]
}

// TaskMinutes returns the memoized per-task worked total over the supplied
// events. The memo was bumped when the events were fetched, so the cached
// value is never older than the list it was computed from.
func (s *EventStore) TaskMinutes(userID, taskID int32, events []core.Event) int {
	return s.memoFor(userID).Minutes(taskID, func() int {
		return core.TimePerTask(events)[taskID]
	})
}

func (s *EventStore) acquire(userID int32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[userID] {
		return false
	}
	s.inFlight[userID] = true
	return true
}

func (s *EventStore) release(userID int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, userID)
}

func (s *EventStore) memoFor(userID int32) *core.TaskTimeMemo {
	s.mu.Lock()
	defer s.mu.Unlock()
	memo, ok := s.memos[userID]
	if !ok {
		memo = core.NewTaskTimeMemo()
		s.memos[userID] = memo
	}
	return memo
}
