package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"internhub/modules/calendar/entity"

	"github.com/google/uuid"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memRepo is an in-memory event store with read-your-writes semantics.
// ListByUserID returns events in insertion order, deep-copied so callers
// cannot mutate stored state without going through Update.
type memRepo struct {
	mu     sync.Mutex
	events map[uuid.UUID]entity.CalendarEvent
	order  []uuid.UUID

	updateErr error // next Update fails with this when set
	listErr   error
}

func newMemRepo() *memRepo {
	return &memRepo{events: make(map[uuid.UUID]entity.CalendarEvent)}
}

func copyEvent(e entity.CalendarEvent) entity.CalendarEvent {
	out := e
	out.Reminders = make(entity.ReminderList, len(e.Reminders))
	copy(out.Reminders, e.Reminders)
	return out
}

func (r *memRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]entity.CalendarEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}

	var out []entity.CalendarEvent
	for _, id := range r.order {
		e := r.events[id]
		if e.UserID == userID {
			out = append(out, copyEvent(e))
		}
	}
	return out, nil
}

func (r *memRepo) GetByID(_ context.Context, userID uuid.UUID, id uuid.UUID) (*entity.CalendarEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok || e.UserID != userID {
		return nil, nil
	}
	out := copyEvent(e)
	return &out, nil
}

func (r *memRepo) Create(_ context.Context, event *entity.CalendarEvent) (*entity.CalendarEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyEvent(*event)
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt

	r.events[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	out := copyEvent(stored)
	return &out, nil
}

func (r *memRepo) Update(_ context.Context, event *entity.CalendarEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.updateErr != nil {
		err := r.updateErr
		r.updateErr = nil
		return err
	}
	if _, ok := r.events[event.ID]; !ok {
		return fmt.Errorf("event %s not found", event.ID)
	}
	r.events[event.ID] = copyEvent(*event)
	return nil
}

func (r *memRepo) Delete(_ context.Context, userID uuid.UUID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.events, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memRepo) failNextUpdate(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateErr = err
}

// mustGet fetches a stored event directly, bypassing user scoping.
func (r *memRepo) mustGet(id uuid.UUID) entity.CalendarEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyEvent(r.events[id])
}

// recordingPresenter records every presentation it receives.
type recordingPresenter struct {
	mu    sync.Mutex
	calls []presentedReminder
	err   error
}

type presentedReminder struct {
	EventID    uuid.UUID
	ReminderID string
}

func (p *recordingPresenter) Present(_ context.Context, event entity.CalendarEvent, reminder entity.Reminder) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.calls = append(p.calls, presentedReminder{EventID: event.ID, ReminderID: reminder.ID})
	return nil
}

func (p *recordingPresenter) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

func (p *recordingPresenter) last() presentedReminder {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[len(p.calls)-1]
}
